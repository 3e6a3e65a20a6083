package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domproduct "example.com/supplement-store/internal/domain/product"
)

const productCollection = "products"

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(productCollection)}
}

// EnsureIndexes creates the text index backing search over
// name/description/brand plus the filter and price indexes.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "brand", Value: "text"},
		}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})
	return err
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, upd domproduct.Update) (*domproduct.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domproduct.ErrInvalidProductID
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.OriginalPrice != nil {
		set["originalPrice"] = *upd.OriginalPrice
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Brand != nil {
		set["brand"] = *upd.Brand
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}

	var p domproduct.Product
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domproduct.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domproduct.ErrInvalidProductID
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domproduct.ErrInvalidProductID
	}

	var p domproduct.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "isActive": true}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domproduct.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, plan domproduct.QueryPlan) ([]*domproduct.Product, int64, error) {
	filter := planFilter(plan)

	cur, err := r.col.Find(ctx, filter, options.Find().
		SetSort(planSort(plan.Sort)).
		SetSkip(plan.Skip).
		SetLimit(plan.Limit))
	if err != nil {
		return nil, 0, err
	}
	products := []*domproduct.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	// Count and fetch are separate reads; drift under concurrent writes
	// is accepted.
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) ListByType(ctx context.Context, productType string, limit int64) ([]*domproduct.Product, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"type": productType, "isActive": true},
		options.Find().
			SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}}).
			SetLimit(limit))
	if err != nil {
		return nil, err
	}
	products := []*domproduct.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) ListFeatured(ctx context.Context) ([]*domproduct.Product, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"isActive": true, "originalPrice": bson.M{"$exists": true}},
		options.Find().
			SetSort(bson.D{{Key: "rating", Value: -1}}).
			SetLimit(domproduct.FeaturedLimit))
	if err != nil {
		return nil, err
	}
	products := []*domproduct.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CountAll reports the collection size regardless of active status; the
// seeder uses it to keep seeding idempotent.
func (r *ProductRepository) CountAll(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
