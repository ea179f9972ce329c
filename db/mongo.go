package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfolio-blog/internal/logger"
	"portfolio-blog/config"
)

// Collection names shared with the repositories.
const (
	CollectionBlogs    = "blogs"
	CollectionProjects = "projects"
	CollectionMessages = "messages"
)

// ErrConnection marks a failure to reach MongoDB.
var ErrConnection = errors.New("document store unreachable")

// Options configures a Connector.
type Options struct {
	URI            string
	DBName         string
	ConnectTimeout time.Duration
	Retries        int
	Backoff        time.Duration
}

// OptionsFromConfig maps the mongo section of the app config.
func OptionsFromConfig(c config.MongoConfig) Options {
	return Options{
		URI:            c.URI,
		DBName:         c.DBName,
		ConnectTimeout: c.ConnectTimeout,
		Retries:        c.ConnectRetries,
		Backoff:        c.RetryBackoff,
	}
}

// Connector lazily owns the single shared mongo client.
// Connect is safe to call on every request; a failed attempt is not cached,
// so the next call dials again. Only one caller dials at a time; the others
// wait for it until their own context ends.
type Connector struct {
	opts Options

	// dialing holds one token while a caller dials or disconnects
	dialing chan struct{}

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewConnector(opts Options) *Connector {
	if opts.Retries <= 0 {
		opts.Retries = 1
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	return &Connector{opts: opts, dialing: make(chan struct{}, 1)}
}

// Connect establishes the shared client if none exists.
func (c *Connector) Connect(ctx context.Context) error {
	if c.Database() != nil {
		return nil
	}
	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	// another caller may have connected while we waited
	if c.Database() != nil {
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= c.opts.Retries; attempt++ {
		cl, err := c.dial(ctx)
		if err == nil {
			d := cl.Database(c.opts.DBName)
			if err := ensureIndexes(ctx, d); err != nil {
				logger.ErrorWithFields("mongo ensure indexes failed", logger.Fields{"error": err.Error()})
			}
			c.mu.Lock()
			c.client = cl
			c.db = d
			c.mu.Unlock()
			logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{
				"db":      c.opts.DBName,
				"attempt": attempt,
			})
			return nil
		}
		lastErr = err
		logger.ErrorWithFields("mongo connection attempt failed", logger.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		})
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrConnection, ctx.Err())
		}
		if attempt == c.opts.Retries || c.opts.Backoff <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrConnection, ctx.Err())
		case <-time.After(c.opts.Backoff * time.Duration(attempt)):
		}
	}
	return fmt.Errorf("%w: %v", ErrConnection, lastErr)
}

func (c *Connector) acquire(ctx context.Context) error {
	select {
	case c.dialing <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrConnection, ctx.Err())
	}
}

func (c *Connector) release() { <-c.dialing }

func (c *Connector) dial(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.ConnectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(c.opts.URI).
		SetServerSelectionTimeout(c.opts.ConnectTimeout)
	cl, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}
	// Ping to verify connection
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, err
	}
	return cl, nil
}

// Database returns the connected database, or nil before a successful Connect.
func (c *Connector) Database() *mongo.Database {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db
}

// Ping checks the live connection, connecting first if needed.
func (c *Connector) Ping(ctx context.Context) error {
	if err := c.Connect(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	cl := c.client
	c.mu.Unlock()
	if cl == nil {
		return ErrConnection
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Disconnect closes the shared client. Connect may be called again afterwards.
func (c *Connector) Disconnect(ctx context.Context) error {
	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	c.mu.Lock()
	cl := c.client
	c.client = nil
	c.db = nil
	c.mu.Unlock()

	if cl == nil {
		return nil
	}
	return cl.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// list endpoints sort by createdAt desc
	for _, name := range []string{CollectionBlogs, CollectionProjects, CollectionMessages} {
		if _, err := d.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		}); err != nil {
			return err
		}
	}

	if _, err := d.Collection(CollectionBlogs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("idx_category"),
	}); err != nil {
		return err
	}
	if _, err := d.Collection(CollectionProjects).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "featured", Value: 1}},
		Options: options.Index().SetName("idx_featured"),
	}); err != nil {
		return err
	}
	if _, err := d.Collection(CollectionMessages).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "read", Value: 1}},
		Options: options.Index().SetName("idx_read"),
	}); err != nil {
		return err
	}
	return nil
}
