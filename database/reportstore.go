// path: database/reportstore.go
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ljh8159/rail-back/apperr"
	"github.com/ljh8159/rail-back/models"
	"github.com/ljh8159/rail-back/reports"
)

const opTimeout = 8 * time.Second

// ReportStore is the MongoDB-backed reports.Store.
type ReportStore struct{}

var _ reports.Store = (*ReportStore)(nil)

func NewReportStore() *ReportStore { return &ReportStore{} }

// nextID allocates the next monotonic report id from the counters
// collection ($inc on a single doc, so allocation is atomic).
func nextID(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := Col("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", name, err)
	}
	return doc.Seq, nil
}

func (s *ReportStore) Insert(ctx context.Context, r *models.Report) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	id, err := nextID(ctx, "reports")
	if err != nil {
		return err
	}
	r.ID = id

	if _, err := Col("reports").InsertOne(ctx, r); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *ReportStore) MarkDispatched(ctx context.Context, location, dispatchUserID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := Col("reports").UpdateMany(ctx,
		bson.M{"location": location, "type": models.TypeReport},
		bson.M{"$set": bson.M{
			"type":             models.TypeDispatched,
			"ai_stage":         models.StageDispatched,
			"dispatch_user_id": dispatchUserID,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("dispatch update: %w", err)
	}
	return res.ModifiedCount, nil
}

func (s *ReportStore) SetDecision(ctx context.Context, id int64, stage int) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := Col("reports").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"ai_stage":           stage,
			"for_userpage_stage": stage,
		}},
	)
	if err != nil {
		return fmt.Errorf("decision update: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("report %d not found", id)
	}
	return nil
}

func (s *ReportStore) FindRecent(ctx context.Context, filters []reports.Filter, limit int64) ([]models.Report, error) {
	or := make([]bson.M, 0, len(filters))
	for _, f := range filters {
		or = append(or, filterToBSON(f))
	}
	query := bson.M{}
	if len(or) == 1 {
		query = or[0]
	} else if len(or) > 1 {
		query = bson.M{"$or": or}
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return s.find(ctx, query, opts)
}

func (s *ReportStore) FindMarkers(ctx context.Context, f reports.Filter) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return s.find(ctx, filterToBSON(f), opts)
}

func (s *ReportStore) Count(ctx context.Context, f reports.Filter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := Col("reports").CountDocuments(ctx, filterToBSON(f))
	if err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

func (s *ReportStore) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := Col("reports").Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find reports: %w", err)
	}
	defer cur.Close(ctx)

	var rows []models.Report
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return rows, nil
}

func filterToBSON(f reports.Filter) bson.M {
	m := bson.M{}
	if f.Type != "" {
		m["type"] = f.Type
	}
	if f.Stage != 0 {
		m["ai_stage"] = f.Stage
	}
	if f.UserID != "" {
		m["user_id"] = f.UserID
	}
	if f.UserpageType != "" {
		m["for_userpage_type"] = f.UserpageType
	}
	if f.UserpageStage != 0 {
		m["for_userpage_stage"] = f.UserpageStage
	}
	if f.DispatchUserID != "" {
		m["dispatch_user_id"] = f.DispatchUserID
	}
	return m
}
