package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByID filters by primary key.
type ByID struct {
	ID uint
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByLandingPageID scopes a query to one landing page's rows. This is the
// scoping every owned collection and feature association query goes through.
type ByLandingPageID struct {
	LandingPageID uint
}

func (s ByLandingPageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("landing_page_id = ?", s.LandingPageID)
}

// ByStartupID filters founder rows by their startup.
type ByStartupID struct {
	StartupID uint
}

func (s ByStartupID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("startup_id = ?", s.StartupID)
}

// OrderBy applies ordering on a raw column name.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// ByDisplayOrder sorts by the display_order column ascending, id as
// tiebreaker so equal orders come back in insertion order.
type ByDisplayOrder struct{}

func (s ByDisplayOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("id ASC")
}

// Pagination limits list queries.
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// FilterBy is a generic single-column equality filter.
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s = ?", s.Field), s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}
