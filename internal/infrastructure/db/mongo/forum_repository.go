package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

const (
	threadsCollection = "threads"
	postsCollection   = "posts"
)

// ThreadRepository persists threads in MongoDB.
type ThreadRepository struct {
	coll *mongo.Collection
}

func NewThreadRepository(db *mongo.Database) *ThreadRepository {
	return &ThreadRepository{coll: db.Collection(threadsCollection)}
}

type mongoThread struct {
	ID         string `bson:"_id"`
	Title      string `bson:"title"`
	OwnerEmail string `bson:"owner_email"`
	CreatedAt  int64  `bson:"created_at"`
}

func (r *ThreadRepository) Create(ctx context.Context, thread *domain.Thread) error {
	doc := mongoThread{
		ID:         thread.ID,
		Title:      thread.Title,
		OwnerEmail: thread.OwnerEmail,
		CreatedAt:  thread.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert thread: %w", err)
	}
	return nil
}

func (r *ThreadRepository) FindByID(ctx context.Context, id string) (*domain.Thread, error) {
	var mt mongoThread
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrThreadNotFound
		}
		return nil, fmt.Errorf("find thread: %w", err)
	}
	return toDomainThread(mt), nil
}

func (r *ThreadRepository) List(ctx context.Context) ([]domain.Thread, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoThread
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode threads: %w", err)
	}

	threads := make([]domain.Thread, 0, len(docs))
	for _, mt := range docs {
		threads = append(threads, *toDomainThread(mt))
	}
	return threads, nil
}

func (r *ThreadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete thread: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func toDomainThread(mt mongoThread) *domain.Thread {
	return &domain.Thread{
		ID:         mt.ID,
		Title:      mt.Title,
		OwnerEmail: mt.OwnerEmail,
		CreatedAt:  time.Unix(mt.CreatedAt, 0).UTC(),
	}
}

// PostRepository persists posts in MongoDB.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID          string `bson:"_id"`
	ThreadID    string `bson:"thread_id"`
	AuthorEmail string `bson:"author_email"`
	Content     string `bson:"content"`
	CreatedAt   int64  `bson:"created_at"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	doc := mongoPost{
		ID:          post.ID,
		ThreadID:    post.ThreadID,
		AuthorEmail: post.AuthorEmail,
		Content:     post.Content,
		CreatedAt:   post.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) ListByThread(ctx context.Context, threadID string) ([]domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"thread_id": threadID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPost
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(docs))
	for _, mp := range docs {
		posts = append(posts, domain.Post{
			ID:          mp.ID,
			ThreadID:    mp.ThreadID,
			AuthorEmail: mp.AuthorEmail,
			Content:     mp.Content,
			CreatedAt:   time.Unix(mp.CreatedAt, 0).UTC(),
		})
	}
	return posts, nil
}
