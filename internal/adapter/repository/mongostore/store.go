// Package mongostore persists search history in MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/flightprint/flightprint-api/internal/domain"
)

// Defaults for the history collection.
const (
	DefaultDatabase   = "flightprint"
	DefaultCollection = "searches"

	statsRecentLimit = 5
)

// Connect opens a client and verifies it with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// Store implements domain.SearchRecorder and domain.SearchHistory.
type Store struct {
	coll *mongo.Collection
}

// NewStore creates a Store over coll.
func NewStore(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// EnsureIndexes creates the indexes used by history queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "searchedAt", Value: -1}}},
		{Keys: bson.D{{Key: "origin", Value: 1}, {Key: "destination", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create search indexes: %w", err)
	}
	return nil
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// Record implements domain.SearchRecorder.
func (s *Store) Record(ctx context.Context, record domain.SearchRecord) error {
	if _, err := s.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert search: %w", err)
	}
	return nil
}

// Recent returns the latest searches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "searchedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find searches: %w", err)
	}
	defer cursor.Close(ctx)

	records := []domain.SearchRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode searches: %w", err)
	}
	return records, nil
}

// PopularRoutes groups searches by route, most searched first.
func (s *Store) PopularRoutes(ctx context.Context, limit int) ([]domain.PopularRoute, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "origin", Value: "$origin"},
				{Key: "destination", Value: "$destination"},
			}},
			{Key: "searchCount", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "lastSearched", Value: bson.D{{Key: "$max", Value: "$searchedAt"}}},
			{Key: "avgAdults", Value: bson.D{{Key: "$avg", Value: "$adults"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "searchCount", Value: -1}, {Key: "lastSearched", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "origin", Value: "$_id.origin"},
			{Key: "destination", Value: "$_id.destination"},
			{Key: "searchCount", Value: 1},
			{Key: "lastSearched", Value: 1},
			{Key: "avgAdults", Value: 1},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate popular routes: %w", err)
	}
	defer cursor.Close(ctx)

	routes := []domain.PopularRoute{}
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("decode popular routes: %w", err)
	}
	for i := range routes {
		routes[i].AvgAdults = roundOne(routes[i].AvgAdults)
	}
	return routes, nil
}

type statsFacet struct {
	Total []struct {
		Count int `bson:"count"`
	} `bson:"total"`
	TripTypes     []domain.BucketCount `bson:"tripTypes"`
	TravelClasses []domain.BucketCount `bson:"travelClasses"`
	AvgAdults     []struct {
		Avg float64 `bson:"avg"`
	} `bson:"avgAdults"`
	Recent []domain.SearchRecord `bson:"recent"`
}

// Stats summarizes the whole collection in one $facet query.
func (s *Store) Stats(ctx context.Context) (domain.SearchStats, error) {
	countBy := func(field string) bson.A {
		return bson.A{
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$" + field},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "total", Value: bson.A{bson.D{{Key: "$count", Value: "count"}}}},
			{Key: "tripTypes", Value: countBy("tripType")},
			{Key: "travelClasses", Value: countBy("travelClass")},
			{Key: "avgAdults", Value: bson.A{bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "avg", Value: bson.D{{Key: "$avg", Value: "$adults"}}},
			}}}}},
			{Key: "recent", Value: bson.A{
				bson.D{{Key: "$sort", Value: bson.D{{Key: "searchedAt", Value: -1}}}},
				bson.D{{Key: "$limit", Value: statsRecentLimit}},
			}},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.SearchStats{}, fmt.Errorf("aggregate search stats: %w", err)
	}
	defer cursor.Close(ctx)

	var facets []statsFacet
	if err := cursor.All(ctx, &facets); err != nil {
		return domain.SearchStats{}, fmt.Errorf("decode search stats: %w", err)
	}

	stats := domain.SearchStats{
		TripTypes:     []domain.BucketCount{},
		TravelClasses: []domain.BucketCount{},
		Recent:        []domain.SearchRecord{},
	}
	if len(facets) == 0 {
		return stats, nil
	}

	f := facets[0]
	if len(f.Total) > 0 {
		stats.TotalSearches = f.Total[0].Count
	}
	if f.TripTypes != nil {
		stats.TripTypes = f.TripTypes
	}
	if f.TravelClasses != nil {
		stats.TravelClasses = f.TravelClasses
	}
	if len(f.AvgAdults) > 0 {
		stats.AvgAdults = roundOne(f.AvgAdults[0].Avg)
	}
	if f.Recent != nil {
		stats.Recent = f.Recent
	}
	return stats, nil
}

// DeleteOlderThan removes searches made before cutoff.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"searchedAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("delete old searches: %w", err)
	}
	return res.DeletedCount, nil
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}

var (
	_ domain.SearchRecorder = (*Store)(nil)
	_ domain.SearchHistory  = (*Store)(nil)
)
