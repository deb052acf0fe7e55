package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

const newsCollection = "news"

type MongoNewsRepository struct {
	coll *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *MongoNewsRepository {
	return &MongoNewsRepository{coll: db.Collection(newsCollection)}
}

type mongoNews struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	Author      string             `bson:"author"`
	IsPublished bool               `bson:"is_published"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toDomainNews(mn mongoNews) *domain.News {
	return &domain.News{
		ID:          mn.ID.Hex(),
		Title:       mn.Title,
		Content:     mn.Content,
		Author:      mn.Author,
		IsPublished: mn.IsPublished,
		CreatedAt:   mn.CreatedAt.UTC(),
		UpdatedAt:   mn.UpdatedAt.UTC(),
	}
}

func (r *MongoNewsRepository) Create(ctx context.Context, news *domain.News) (*domain.News, error) {
	doc := mongoNews{
		Title:       news.Title,
		Content:     news.Content,
		Author:      news.Author,
		IsPublished: news.IsPublished,
		CreatedAt:   news.CreatedAt,
		UpdatedAt:   news.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}

	created := *news
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoNewsRepository) FindByID(ctx context.Context, id string) (*domain.News, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var mn mongoNews
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return toDomainNews(mn), nil
}

func (r *MongoNewsRepository) List(ctx context.Context, onlyPublished bool, limit int64) ([]*domain.News, error) {
	query := bson.M{}
	if onlyPublished {
		query["is_published"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*domain.News
	for cursor.Next(ctx) {
		var mn mongoNews
		if err := cursor.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode news: %w", err)
		}
		items = append(items, toDomainNews(mn))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

func (r *MongoNewsRepository) Update(ctx context.Context, id string, patch ports.NewsPatch) (*domain.News, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.IsPublished != nil {
		set["is_published"] = *patch.IsPublished
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var mn mongoNews
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("update news: %w", err)
	}
	return toDomainNews(mn), nil
}

func (r *MongoNewsRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}
