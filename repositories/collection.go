package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-blog/db"
)

// ErrNotFound is returned when no document matches the given id.
var ErrNotFound = errors.New("document not found")

// Source hands out the lazily connected database. *db.Connector implements it.
type Source interface {
	Connect(ctx context.Context) error
	Database() *mongo.Database
}

// Now is the timestamp source for createdAt/updatedAt, truncated to the
// millisecond precision BSON dates keep.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// collection holds the CRUD plumbing shared by the resource repositories.
type collection[T any] struct {
	src  Source
	name string
}

func (c collection[T]) get(ctx context.Context) (*mongo.Collection, error) {
	if err := c.src.Connect(ctx); err != nil {
		return nil, err
	}
	d := c.src.Database()
	if d == nil {
		return nil, db.ErrConnection
	}
	return d.Collection(c.name), nil
}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	col, err := c.get(ctx)
	if err != nil {
		return err
	}
	_, err = col.InsertOne(ctx, doc)
	return err
}

// find returns the matching documents newest first.
func (c collection[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	col, err := c.get(ctx)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := make([]T, 0)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c collection[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	col, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// replace overwrites the stored document; the last write wins.
func (c collection[T]) replace(ctx context.Context, id primitive.ObjectID, doc *T) error {
	col, err := c.get(ctx)
	if err != nil {
		return err
	}
	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c collection[T]) delete(ctx context.Context, id primitive.ObjectID) error {
	col, err := c.get(ctx)
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c collection[T]) count(ctx context.Context, filter bson.M) (int64, error) {
	col, err := c.get(ctx)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, filter)
}
