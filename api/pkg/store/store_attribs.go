package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Artox/open-build-service/api/pkg/types"
)

func (s *PostgresStore) GetAttribType(ctx context.Context, namespace, name string) (*types.AttribType, error) {
	var at types.AttribType
	err := s.gdb.WithContext(ctx).Where("namespace = ? AND name = ?", namespace, name).First(&at).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting attribute type: %w", err)
	}
	return &at, nil
}

// ListAttribValues returns package id -> first value of one attribute kind for
// all given packages in a single query
func (s *PostgresStore) ListAttribValues(ctx context.Context, query *ListAttribValuesQuery) (map[uint]string, error) {
	result := make(map[uint]string)
	if len(query.PackageIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		PackageID uint
		Value     string
		Position  int
	}
	err := s.gdb.WithContext(ctx).
		Table("attrib_values").
		Select("attribs.package_id AS package_id, attrib_values.value AS value, attrib_values.position AS position").
		Joins("JOIN attribs ON attribs.id = attrib_values.attrib_id").
		Joins("JOIN attrib_types ON attrib_types.id = attribs.attrib_type_id").
		Where("attrib_types.namespace = ? AND attrib_types.name = ?", query.Namespace, query.Name).
		Where("attribs.package_id IN ?", query.PackageIDs).
		Order("attrib_values.position DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error listing attribute values: %w", err)
	}

	// rows come highest position first, so the lowest position wins
	for _, row := range rows {
		result[row.PackageID] = row.Value
	}
	return result, nil
}

// SetPackageAttribute creates or replaces the single value of a package attribute
func (s *PostgresStore) SetPackageAttribute(ctx context.Context, query *SetPackageAttributeQuery) error {
	at, err := s.GetAttribType(ctx, query.Namespace, query.Name)
	if err != nil {
		return err
	}

	return s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		packageID := query.PackageID
		var attrib types.Attrib
		err := tx.Where(types.Attrib{AttribTypeID: at.ID, PackageID: &packageID}).FirstOrCreate(&attrib).Error
		if err != nil {
			return fmt.Errorf("error saving attribute: %w", err)
		}

		var value types.AttribValue
		err = tx.Where("attrib_id = ?", attrib.ID).Order("position").First(&value).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			value = types.AttribValue{AttribID: attrib.ID}
		case err != nil:
			return fmt.Errorf("error loading attribute value: %w", err)
		}
		value.Value = query.Value
		value.Position = 1
		if err := tx.Save(&value).Error; err != nil {
			return fmt.Errorf("error saving attribute value: %w", err)
		}
		return nil
	})
}

func (s *PostgresStore) DeletePackageAttribute(ctx context.Context, namespace, name string, packageID uint) error {
	at, err := s.GetAttribType(ctx, namespace, name)
	if err != nil {
		return err
	}

	return s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attribIDs := tx.Model(&types.Attrib{}).Select("id").Where("attrib_type_id = ? AND package_id = ?", at.ID, packageID)
		if err := tx.Where("attrib_id IN (?)", attribIDs).Delete(&types.AttribValue{}).Error; err != nil {
			return fmt.Errorf("error deleting attribute values: %w", err)
		}
		if err := tx.Where("attrib_type_id = ? AND package_id = ?", at.ID, packageID).Delete(&types.Attrib{}).Error; err != nil {
			return fmt.Errorf("error deleting attribute: %w", err)
		}
		return nil
	})
}
