package sqlrepo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/chrisdamba/foodcatalogsim/internal/database"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var restaurantColumns = []string{
	"id", "name", "category", "rating", "delivery_fee", "delivery_time", "address",
	"tags", "is_open", "image_url", "is_active", "created_at", "updated_at",
}

// SaveRestaurants inserts or updates each restaurant by (name, category) among
// active rows. Assigned ids are written back into the records.
func (s *Store) SaveRestaurants(ctx context.Context, restaurants []*models.Restaurant) (models.ReconciliationResult, error) {
	var result models.ReconciliationResult
	for _, r := range restaurants {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		row, err := formatRestaurant(r)
		if err != nil {
			s.logger.Warn("dropping restaurant", "error", err)
			result.Skipped++
			continue
		}

		result.TotalProcessed++
		inserted, err := s.upsertRestaurant(ctx, &row)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				result.Errors++
				return result, ctxErr
			}
			s.logger.Error("failed to save restaurant", "error", err)
			result.Errors++
			continue
		}

		r.ID = row.ID
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func (s *Store) upsertRestaurant(ctx context.Context, r *models.Restaurant) (bool, error) {
	key := r.Name + "/" + r.Category.String()

	id, err := s.findRestaurantID(ctx, r.Name, r.Category)
	if err != nil && !errors.Is(err, database.ErrNoRows) {
		return false, &PersistenceError{Table: models.TableRestaurants, Op: "lookup", Key: key, Err: err}
	}

	now := s.timestamp()
	if err == nil {
		query, args, err := s.sb.Update(models.TableRestaurants).
			SetMap(map[string]any{
				"rating":        r.Rating,
				"delivery_fee":  r.DeliveryFee,
				"delivery_time": r.DeliveryTime,
				"address":       r.Address,
				"tags":          joinTags(r.Tags),
				"is_open":       r.IsOpen,
				"image_url":     r.ImageURL,
				"updated_at":    now,
			}).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return false, fmt.Errorf("build restaurant update: %w", err)
		}
		if _, err := s.q.Exec(ctx, query, args...); err != nil {
			return false, &PersistenceError{Table: models.TableRestaurants, Op: "update", Key: key, Err: err}
		}
		r.ID = id
		return false, nil
	}

	query, args, err := s.sb.Insert(models.TableRestaurants).
		Columns(restaurantColumns[1:]...).
		Values(
			r.Name, r.Category.String(), r.Rating, r.DeliveryFee, r.DeliveryTime, r.Address,
			joinTags(r.Tags), r.IsOpen, r.ImageURL, true, now, now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build restaurant insert: %w", err)
	}
	if err := s.q.QueryRow(ctx, query, args...).Scan(&r.ID); err != nil {
		return false, &PersistenceError{Table: models.TableRestaurants, Op: "insert", Key: key, Err: err}
	}
	return true, nil
}

func (s *Store) findRestaurantID(ctx context.Context, name string, category models.Category) (int64, error) {
	query, args, err := s.sb.Select("id").
		From(models.TableRestaurants).
		Where(sq.Eq{"name": name, "category": category.String(), "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := s.q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// LoadActiveRestaurants returns every active restaurant ordered by id.
func (s *Store) LoadActiveRestaurants(ctx context.Context) []*models.Restaurant {
	restaurants, err := s.queryRestaurants(ctx, s.sb.Select(restaurantColumns...).
		From(models.TableRestaurants).
		Where(sq.Eq{"is_active": true}).
		OrderBy("id"))
	if err != nil {
		s.logger.Error("failed to load active restaurants", "error", err)
		return []*models.Restaurant{}
	}
	return restaurants
}

func (s *Store) queryRestaurants(ctx context.Context, builder sq.SelectBuilder) ([]*models.Restaurant, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []*models.Restaurant{}
	for rows.Next() {
		var r models.Restaurant
		var category, tags string
		if err := rows.Scan(
			&r.ID, &r.Name, &category, &r.Rating, &r.DeliveryFee, &r.DeliveryTime, &r.Address,
			&tags, &r.IsOpen, &r.ImageURL, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		r.Category = models.Category(category)
		r.Tags = splitTags(tags)
		restaurants = append(restaurants, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return restaurants, nil
}

// CountByCategory counts active restaurants per category.
func (s *Store) CountByCategory(ctx context.Context) (map[models.Category]int, error) {
	query, args, err := s.sb.Select("category", "COUNT(*)").
		From(models.TableRestaurants).
		Where(sq.Eq{"is_active": true}).
		GroupBy("category").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count restaurants by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Category]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[models.Category(category)] = n
	}
	return counts, rows.Err()
}
