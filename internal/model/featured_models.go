package model

import "time"

// Feature associations are many-to-many join rows promoting a content entity
// onto the landing page. The same entity may be featured more than once.
// Order here is the canonical display order for featured listings and is
// independent of the entity's own display_order.

// FeaturedAssociation is the uniform surface the feature association manager
// works through; every Featured* model implements it with pointer receivers.
type FeaturedAssociation interface {
	AssociationId() uint
	PageId() uint
	TargetId() uint
	DisplayOrder() int
	SetPage(id uint)
	SetTarget(id uint)
	SetDisplayOrder(order int)
}

// FeaturedPtr constrains a type parameter to "pointer to a featured model".
type FeaturedPtr[M any] interface {
	*M
	FeaturedAssociation
}

type FeaturedEvent struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	EventId       uint      `gorm:"not null;index" json:"eventId"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	Event         *Event    `gorm:"foreignKey:EventId" json:"event,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FeaturedEvent) TableName() string {
	return "featured_events"
}

func (f *FeaturedEvent) AssociationId() uint     { return f.Id }
func (f *FeaturedEvent) PageId() uint            { return f.LandingPageId }
func (f *FeaturedEvent) TargetId() uint          { return f.EventId }
func (f *FeaturedEvent) DisplayOrder() int       { return f.Order }
func (f *FeaturedEvent) SetPage(id uint)         { f.LandingPageId = id }
func (f *FeaturedEvent) SetTarget(id uint)       { f.EventId = id }
func (f *FeaturedEvent) SetDisplayOrder(o int)   { f.Order = o }

type FeaturedProgram struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	ProgramId     uint      `gorm:"not null;index" json:"programId"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	Program       *Program  `gorm:"foreignKey:ProgramId" json:"program,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FeaturedProgram) TableName() string {
	return "featured_programs"
}

func (f *FeaturedProgram) AssociationId() uint   { return f.Id }
func (f *FeaturedProgram) PageId() uint          { return f.LandingPageId }
func (f *FeaturedProgram) TargetId() uint        { return f.ProgramId }
func (f *FeaturedProgram) DisplayOrder() int     { return f.Order }
func (f *FeaturedProgram) SetPage(id uint)       { f.LandingPageId = id }
func (f *FeaturedProgram) SetTarget(id uint)     { f.ProgramId = id }
func (f *FeaturedProgram) SetDisplayOrder(o int) { f.Order = o }

type FeaturedNews struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	NewsId        uint      `gorm:"not null;index" json:"newsId"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	News          *News     `gorm:"foreignKey:NewsId" json:"news,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FeaturedNews) TableName() string {
	return "featured_news"
}

func (f *FeaturedNews) AssociationId() uint   { return f.Id }
func (f *FeaturedNews) PageId() uint          { return f.LandingPageId }
func (f *FeaturedNews) TargetId() uint        { return f.NewsId }
func (f *FeaturedNews) DisplayOrder() int     { return f.Order }
func (f *FeaturedNews) SetPage(id uint)       { f.LandingPageId = id }
func (f *FeaturedNews) SetTarget(id uint)     { f.NewsId = id }
func (f *FeaturedNews) SetDisplayOrder(o int) { f.Order = o }

type FeaturedHistoryAndValues struct {
	Id                 uint              `gorm:"primaryKey" json:"id"`
	LandingPageId      uint              `gorm:"not null;index" json:"landingPageId"`
	HistoryAndValuesId uint              `gorm:"not null;index" json:"historyAndValuesId"`
	Order              int               `gorm:"column:display_order;default:0" json:"order"`
	HistoryAndValues   *HistoryAndValues `gorm:"foreignKey:HistoryAndValuesId" json:"historyAndValues,omitempty"`
	CreatedAt          time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FeaturedHistoryAndValues) TableName() string {
	return "featured_history_and_values"
}

func (f *FeaturedHistoryAndValues) AssociationId() uint   { return f.Id }
func (f *FeaturedHistoryAndValues) PageId() uint          { return f.LandingPageId }
func (f *FeaturedHistoryAndValues) TargetId() uint        { return f.HistoryAndValuesId }
func (f *FeaturedHistoryAndValues) DisplayOrder() int     { return f.Order }
func (f *FeaturedHistoryAndValues) SetPage(id uint)       { f.LandingPageId = id }
func (f *FeaturedHistoryAndValues) SetTarget(id uint)     { f.HistoryAndValuesId = id }
func (f *FeaturedHistoryAndValues) SetDisplayOrder(o int) { f.Order = o }

type FeaturedStartup struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	StartupId     uint      `gorm:"not null;index" json:"startupId"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	Startup       *Startup  `gorm:"foreignKey:StartupId" json:"startup,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FeaturedStartup) TableName() string {
	return "featured_startups"
}

func (f *FeaturedStartup) AssociationId() uint   { return f.Id }
func (f *FeaturedStartup) PageId() uint          { return f.LandingPageId }
func (f *FeaturedStartup) TargetId() uint        { return f.StartupId }
func (f *FeaturedStartup) DisplayOrder() int     { return f.Order }
func (f *FeaturedStartup) SetPage(id uint)       { f.LandingPageId = id }
func (f *FeaturedStartup) SetTarget(id uint)     { f.StartupId = id }
func (f *FeaturedStartup) SetDisplayOrder(o int) { f.Order = o }
