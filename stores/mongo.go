package stores

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nourshop-backend/models"
)

// Mongo menampung implementasi store berbasis MongoDB.
type Mongo struct {
	Products ProductStore
	Orders   OrderStore
	Admins   AdminStore
}

// NewMongo membuat store untuk semua koleksi pada database yang diberikan.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		Products: &mongoProducts{col: db.Collection("products")},
		Orders:   &mongoOrders{col: db.Collection("orders")},
		Admins:   &mongoAdmins{col: db.Collection("admins")},
	}
}

type mongoProducts struct {
	col *mongo.Collection
}

func (s *mongoProducts) All(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *mongoProducts) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

func (s *mongoProducts) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	result, err := s.col.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return product, nil
}

type mongoOrders struct {
	col *mongo.Collection
}

func (s *mongoOrders) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	result, err := s.col.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (s *mongoOrders) All(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type mongoAdmins struct {
	col *mongo.Collection
}

func (s *mongoAdmins) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	var admin models.Admin
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return models.Admin{}, ErrNotFound
	}
	return admin, err
}

func (s *mongoAdmins) Insert(ctx context.Context, admin models.Admin) (models.Admin, error) {
	result, err := s.col.InsertOne(ctx, admin)
	if err != nil {
		return models.Admin{}, err
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return admin, nil
}
