package sqlrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

// DeactivateStale marks restaurants not updated in the last daysOld days inactive,
// then deactivates every active product of an inactive restaurant. Failures are
// logged and reported as zero counts for the failed step.
func (s *Store) DeactivateStale(ctx context.Context, daysOld int) models.DeactivationResult {
	var result models.DeactivationResult
	cutoff := s.timestamp().Add(-time.Duration(daysOld) * 24 * time.Hour)

	query, args, err := s.sb.Update(models.TableRestaurants).
		Set("is_active", false).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Lt{"updated_at": cutoff}).
		ToSql()
	if err == nil {
		result.RestaurantsDeactivated, err = s.q.Exec(ctx, query, args...)
	}
	if err != nil {
		s.logger.Error("failed to deactivate stale restaurants", "days_old", daysOld, "error", err)
		return models.DeactivationResult{}
	}

	query, args, err = s.sb.Update(models.TableProducts).
		Set("is_active", false).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Expr("restaurant_id IN (SELECT id FROM "+models.TableRestaurants+" WHERE is_active = ?)", false)).
		ToSql()
	if err == nil {
		result.ProductsDeactivated, err = s.q.Exec(ctx, query, args...)
	}
	if err != nil {
		s.logger.Error("failed to deactivate products of inactive restaurants", "error", err)
		result.ProductsDeactivated = 0
	}

	s.logger.Info("deactivated stale records",
		"days_old", daysOld,
		"restaurants", result.RestaurantsDeactivated,
		"products", result.ProductsDeactivated)
	return result
}

// Counts returns the number of active restaurants and of active products with an
// active restaurant.
func (s *Store) Counts(ctx context.Context) (models.CatalogCounts, error) {
	var counts models.CatalogCounts

	query, args, err := s.sb.Select("COUNT(*)").
		From(models.TableRestaurants).
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return counts, err
	}
	if err := s.q.QueryRow(ctx, query, args...).Scan(&counts.Restaurants); err != nil {
		return counts, fmt.Errorf("count restaurants: %w", err)
	}

	query, args, err = s.sb.Select("COUNT(*)").
		From(models.TableProducts + " p").
		Join(models.TableRestaurants + " r ON r.id = p.restaurant_id").
		Where(sq.Eq{"p.is_active": true, "r.is_active": true}).
		ToSql()
	if err != nil {
		return counts, err
	}
	if err := s.q.QueryRow(ctx, query, args...).Scan(&counts.Products); err != nil {
		return counts, fmt.Errorf("count products: %w", err)
	}
	return counts, nil
}
