package sqlrepo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/chrisdamba/foodcatalogsim/internal/database"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var productColumns = []string{
	"id", "name", "description", "price", "original_price", "category", "restaurant_id",
	"image_url", "is_available", "nutritional_info", "allergens", "tags",
	"preparation_time", "portion_size", "is_active", "created_at", "updated_at",
}

// SaveProducts formats every product, drops the ones missing a natural-key field
// and reconciles the rest by (name, restaurant_id) among active rows.
func (s *Store) SaveProducts(ctx context.Context, products []*models.Product) (models.ReconciliationResult, error) {
	var result models.ReconciliationResult

	type pending struct {
		source *models.Product
		row    models.Product
	}
	formatted := make([]pending, 0, len(products))
	for _, p := range products {
		row, err := formatProduct(p)
		if err != nil {
			s.logger.Warn("dropping product", "error", err)
			result.Skipped++
			continue
		}
		formatted = append(formatted, pending{source: p, row: row})
	}

	for i := range formatted {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		item := &formatted[i]

		result.TotalProcessed++
		inserted, err := s.upsertProduct(ctx, &item.row)
		if err != nil {
			result.Errors++
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			s.logger.Error("failed to save product", "error", err)
			continue
		}

		item.source.ID = item.row.ID
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func (s *Store) upsertProduct(ctx context.Context, p *models.Product) (bool, error) {
	key := fmt.Sprintf("%s/%d", p.Name, p.RestaurantID)

	id, err := s.findProductID(ctx, p.Name, p.RestaurantID)
	if err != nil && !errors.Is(err, database.ErrNoRows) {
		return false, &PersistenceError{Table: models.TableProducts, Op: "lookup", Key: key, Err: err}
	}

	now := s.timestamp()
	if err == nil {
		query, args, err := s.sb.Update(models.TableProducts).
			SetMap(map[string]any{
				"description":      p.Description,
				"price":            p.Price,
				"original_price":   p.OriginalPrice,
				"category":         p.Category.String(),
				"image_url":        p.ImageURL,
				"is_available":     p.IsAvailable,
				"nutritional_info": p.NutritionalInfo,
				"allergens":        p.Allergens,
				"tags":             joinTags(p.Tags),
				"preparation_time": p.PreparationTime,
				"portion_size":     p.PortionSize,
				"updated_at":       now,
			}).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return false, fmt.Errorf("build product update: %w", err)
		}
		if _, err := s.q.Exec(ctx, query, args...); err != nil {
			return false, &PersistenceError{Table: models.TableProducts, Op: "update", Key: key, Err: err}
		}
		p.ID = id
		return false, nil
	}

	query, args, err := s.sb.Insert(models.TableProducts).
		Columns(productColumns[1:]...).
		Values(
			p.Name, p.Description, p.Price, p.OriginalPrice, p.Category.String(), p.RestaurantID,
			p.ImageURL, p.IsAvailable, p.NutritionalInfo, p.Allergens, joinTags(p.Tags),
			p.PreparationTime, p.PortionSize, true, now, now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build product insert: %w", err)
	}
	if err := s.q.QueryRow(ctx, query, args...).Scan(&p.ID); err != nil {
		return false, &PersistenceError{Table: models.TableProducts, Op: "insert", Key: key, Err: err}
	}
	return true, nil
}

func (s *Store) findProductID(ctx context.Context, name string, restaurantID int64) (int64, error) {
	query, args, err := s.sb.Select("id").
		From(models.TableProducts).
		Where(sq.Eq{"name": name, "restaurant_id": restaurantID, "is_active": true}).
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

// LoadActiveProducts returns active products whose restaurant is active too, with
// the restaurant name filled in.
func (s *Store) LoadActiveProducts(ctx context.Context) []*models.Product {
	products, err := s.queryActiveProducts(ctx)
	if err != nil {
		s.logger.Error("failed to load active products", "error", err)
		return []*models.Product{}
	}
	return products
}

func (s *Store) queryActiveProducts(ctx context.Context) ([]*models.Product, error) {
	columns := make([]string, 0, len(productColumns)+1)
	for _, c := range productColumns {
		columns = append(columns, "p."+c)
	}
	columns = append(columns, "r.name")

	query, args, err := s.sb.Select(columns...).
		From(models.TableProducts + " p").
		Join(models.TableRestaurants + " r ON r.id = p.restaurant_id").
		Where(sq.Eq{"p.is_active": true, "r.is_active": true}).
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var p models.Product
		var category, tags string
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &category, &p.RestaurantID,
			&p.ImageURL, &p.IsAvailable, &p.NutritionalInfo, &p.Allergens, &tags,
			&p.PreparationTime, &p.PortionSize, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
			&p.RestaurantName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = models.Category(category)
		p.Tags = splitTags(tags)
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return products, nil
}
