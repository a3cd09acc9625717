package persistence

import (
	"context"
	"errors"

	"pagecaster/domain/model"
	"pagecaster/domain/repository"
	"pagecaster/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const pageCredentialCollection = "page_credentials"

type PageCredentialRepository struct {
	mongoDb *mongo.Client
	dbName  string
}

func NewPageCredentialRepository(db *mongo.Client, dbName string) repository.IPageCredential {
	return &PageCredentialRepository{mongoDb: db, dbName: dbName}
}

func (r *PageCredentialRepository) collection() *mongo.Collection {
	return r.mongoDb.Database(r.dbName).Collection(pageCredentialCollection)
}

func (r *PageCredentialRepository) Get(ctx context.Context, pageID string) (*model.PageCredential, error) {
	var cred model.PageCredential
	err := r.collection().FindOne(ctx, bson.D{{Key: "pageId", Value: pageID}}).Decode(&cred)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.GetLogger().WithField("error", err).Error("Error while fetching page credential")
		return nil, err
	}
	return &cred, nil
}

func (r *PageCredentialRepository) Upsert(ctx context.Context, cred *model.PageCredential) error {
	filter := bson.D{{Key: "pageId", Value: cred.PageID}}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, filter, cred, opts)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while upserting page credential")
	}
	return err
}

func (r *PageCredentialRepository) List(ctx context.Context, ownerUserID string) ([]*model.PageCredential, error) {
	filter := bson.D{}
	if ownerUserID != "" {
		filter = bson.D{{Key: "ownerUserId", Value: ownerUserID}}
	}
	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing page credentials")
		return nil, err
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}(cursor, ctx)

	var creds []*model.PageCredential
	for cursor.Next(ctx) {
		var cred model.PageCredential
		if err := cursor.Decode(&cred); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding page credential")
			continue
		}
		creds = append(creds, &cred)
	}
	return creds, cursor.Err()
}

func (r *PageCredentialRepository) Delete(ctx context.Context, pageID string) error {
	_, err := r.collection().DeleteOne(ctx, bson.D{{Key: "pageId", Value: pageID}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting page credential")
	}
	return err
}
