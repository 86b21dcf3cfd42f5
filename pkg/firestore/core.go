package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

func create[T any](ctx context.Context, client *firestore.Client, documentPath string, t *T) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return fmt.Errorf("invalid document path, %s", documentPath)
	}

	if _, err := dr.Create(ctx, t); err != nil {
		return fmt.Errorf("error creating document, %s", err)
	}

	return nil
}

func get[T any](ctx context.Context, client *firestore.Client, documentPath string) (*T, error) {
	dr := client.Doc(documentPath)
	if dr == nil {
		return nil, fmt.Errorf("invalid document path, %s", documentPath)
	}

	ds, err := dr.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting document, %s", err)
	}

	t := new(T)
	if err = ds.DataTo(t); err != nil {
		return nil, fmt.Errorf("error decoding document, %s", err)
	}

	return t, nil
}

func update(ctx context.Context, client *firestore.Client, documentPath string, fields map[string]any) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return fmt.Errorf("invalid document path, %s", documentPath)
	}

	updates := make([]firestore.Update, 0)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	if _, err := dr.Update(ctx, updates); err != nil {
		return fmt.Errorf("error updating document, %s", err)
	}

	return nil
}

func remove(ctx context.Context, client *firestore.Client, documentPath string) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return fmt.Errorf("invalid document path, %s", documentPath)
	}

	if _, err := dr.Delete(ctx); err != nil {
		return fmt.Errorf("error deleting document, %s", err)
	}

	return nil
}

func query[T any](ctx context.Context, client *firestore.Client, criteria QueryCriteria) ([]*T, error) {
	cr := client.Collection(criteria.Path)
	if cr == nil {
		return nil, fmt.Errorf("invalid collection path, %s", criteria.Path)
	}

	var q firestore.Query
	if criteria.Filter == nil {
		q = cr.Query
	} else {
		q = cr.WhereEntity(criteria.Filter)
	}

	for _, o := range criteria.OrderBy {
		q = q.OrderBy(o.Field, o.Direction)
	}

	if criteria.Limit > 0 {
		q = q.Limit(criteria.Limit)
	}

	iter := q.Documents(ctx)
	ds, err := iter.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying documents, %s", err)
	}

	documents := make([]*T, 0)
	for _, d := range ds {
		t := new(T)
		if err = d.DataTo(t); err != nil {
			return nil, fmt.Errorf("error decoding document, %s", err)
		}
		documents = append(documents, t)
	}

	return documents, nil
}

type QueryCriteria struct {
	Path    string
	Filter  firestore.EntityFilter
	OrderBy []OrderBy
	Limit   int
}

type OrderBy struct {
	Field     string
	Direction firestore.Direction
}

const (
	Equal              string = "=="
	GreaterThanOrEqual string = ">="
	LessThanOrEqual    string = "<="
)

func createPropertyFilter(path, operator string, value any) firestore.PropertyFilter {
	return firestore.PropertyFilter{
		Path:     path,
		Operator: operator,
		Value:    value,
	}
}
