package readmodel_test

import (
	"testing"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenEventsUsesAssociationIdAndOrder(t *testing.T) {
	rows := []*model.FeaturedEvent{
		{
			Id:            10,
			LandingPageId: 1,
			EventId:       3,
			Order:         7,
			Event:         &model.Event{Id: 3, Title: "Demo Day", Description: "Showcase"},
		},
	}

	items := readmodel.FlattenEvents(rows)
	require.Len(t, items, 1)
	// The item carries the association's identity, not the entity's.
	assert.EqualValues(t, 10, items[0].Id)
	assert.Equal(t, 7, items[0].Order)
	assert.EqualValues(t, 3, items[0].EventId)
	assert.Equal(t, "Demo Day", items[0].Title)
}

func TestFlattenSkipsRowsWithoutEntity(t *testing.T) {
	rows := []*model.FeaturedProgram{
		{Id: 1, ProgramId: 5, Program: &model.Program{Id: 5, Title: "Incubation"}},
		{Id: 2, ProgramId: 6, Program: nil},
	}

	items := readmodel.FlattenPrograms(rows)
	require.Len(t, items, 1)
	assert.Equal(t, "Incubation", items[0].Title)
}

func TestFlattenPreservesInputOrderNotEntityOrder(t *testing.T) {
	// The entity's own display_order disagrees with the association order;
	// the flattened list must follow the associations as given.
	rows := []*model.FeaturedStartup{
		{Id: 1, StartupId: 2, Order: 1, Startup: &model.Startup{Id: 2, Name: "Beta Corp", Order: 99}},
		{Id: 2, StartupId: 1, Order: 2, Startup: &model.Startup{Id: 1, Name: "Alpha Inc", Order: 1}},
	}

	items := readmodel.FlattenStartups(rows)
	require.Len(t, items, 2)
	assert.Equal(t, "Beta Corp", items[0].Name)
	assert.Equal(t, 1, items[0].Order)
	assert.Equal(t, "Alpha Inc", items[1].Name)
}

func TestBuildView(t *testing.T) {
	resp := &dto.LandingResponse{
		Id:           1,
		HeroSections: []*model.HeroSection{{Id: 1, Title: "Hero"}},
		Footer:       &model.Footer{Id: 1, Content: "footer"},
		FeaturedNews: []*model.FeaturedNews{
			{Id: 4, NewsId: 9, Order: 1, News: &model.News{Id: 9, Title: "Headline"}},
		},
	}

	view := readmodel.BuildView(resp)
	assert.EqualValues(t, 1, view.Id)
	require.Len(t, view.HeroSections, 1)
	require.NotNil(t, view.Footer)
	require.Len(t, view.FeaturedNews, 1)
	assert.Equal(t, "Headline", view.FeaturedNews[0].Title)
	assert.Empty(t, view.FeaturedEvents)
}
