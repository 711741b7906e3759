// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/tracing"
)

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	return &Tuple{
		User:     user,
		Relation: relation,
		Object:   object,
	}
}

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg *Config) *Client {
	fgaClient, err := client.NewSdkClient(&client.ClientConfiguration{
		ApiScheme:            cfg.ApiScheme,
		ApiHost:              cfg.ApiHost,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.ModelID,
		Credentials: &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		},
	})
	if err != nil {
		cfg.Logger.Fatalf("failed to create openfga client: %v", err)
	}

	return &Client{
		c:       fgaClient,
		tracer:  cfg.Tracer,
		monitor: cfg.Monitor,
		logger:  cfg.Logger,
	}
}

func (c *Client) Check(ctx context.Context, user, relation, object string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	r, err := c.c.Check(ctx).
		Body(client.ClientCheckRequest{
			User:     user,
			Relation: relation,
			Object:   object,
		}).
		Execute()
	if err != nil {
		return false, fmt.Errorf("failed to perform check: %w", err)
	}

	return r.GetAllowed(), nil
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).
		Body(client.ClientListObjectsRequest{
			User:     user,
			Relation: relation,
			Type:     objectType,
		}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	return r.GetObjects(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.Write(ctx).
		Body(client.ClientWriteRequest{
			Writes: []client.ClientTupleKey{
				{User: user, Relation: relation, Object: object},
			},
		}).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to write tuple: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	deletes := make([]client.ClientTupleKeyWithoutCondition, len(tuples))
	for i, t := range tuples {
		deletes[i] = client.ClientTupleKeyWithoutCondition{
			User:     t.User,
			Relation: t.Relation,
			Object:   t.Object,
		}
	}

	_, err := c.c.Write(ctx).
		Body(client.ClientWriteRequest{Deletes: deletes}).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete tuples: %w", err)
	}

	return nil
}

// ReadTuples pages through tuples matching the filter. Empty filter fields
// match everything.
func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) ([]Tuple, string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = fga.PtrString(user)
	}
	if relation != "" {
		body.Relation = fga.PtrString(relation)
	}
	if object != "" {
		body.Object = fga.PtrString(object)
	}

	r, err := c.c.Read(ctx).
		Body(body).
		Options(client.ClientReadOptions{ContinuationToken: fga.PtrString(continuationToken)}).
		Execute()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read tuples: %w", err)
	}

	tuples := make([]Tuple, len(r.Tuples))
	for i, t := range r.Tuples {
		tuples[i] = Tuple{
			User:     t.Key.User,
			Relation: t.Key.Relation,
			Object:   t.Key.Object,
		}
	}

	return tuples, r.ContinuationToken, nil
}
