package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"foodiesbnb/internal/models/db_models"
)

var errBoom = errors.New("boom")

type fakeProfileRepo struct {
	profiles  map[string]*db_models.Profile
	err       error
	createErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*db_models.Profile)}
}

func (f *fakeProfileRepo) CreateWithRole(_ context.Context, profile *db_models.Profile, restaurant *db_models.Restaurant, creator *db_models.Creator) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.err != nil {
		return f.err
	}
	f.profiles[profile.ID.String()] = profile
	if restaurant != nil {
		restaurant.ID = profile.ID
	}
	if creator != nil {
		creator.ID = profile.ID
	}
	return nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id string) (*db_models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) FindByEmail(_ context.Context, email string) (*db_models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *db_models.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.profiles[profile.ID.String()] = profile
	return nil
}

type fakeRestaurantRepo struct {
	restaurants map[string]*db_models.Restaurant

	lastSearch   string
	lastProvince string

	statsID      string
	statsAverage float64
	statsTotal   int
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[string]*db_models.Restaurant)}
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id string) (*db_models.Restaurant, error) {
	return f.restaurants[id], nil
}

func (f *fakeRestaurantRepo) Search(_ context.Context, search, province string) ([]db_models.Restaurant, error) {
	f.lastSearch = search
	f.lastProvince = province
	out := make([]db_models.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRestaurantRepo) UpdateRatingStats(_ context.Context, id string, average float64, total int) error {
	f.statsID = id
	f.statsAverage = average
	f.statsTotal = total
	return nil
}

type fakeCreatorRepo struct {
	creators map[string]*db_models.Creator

	lastSearch   string
	lastProvince string

	statsID      string
	statsAverage float64
	statsTotal   int
}

func newFakeCreatorRepo() *fakeCreatorRepo {
	return &fakeCreatorRepo{creators: make(map[string]*db_models.Creator)}
}

func (f *fakeCreatorRepo) FindByID(_ context.Context, id string) (*db_models.Creator, error) {
	return f.creators[id], nil
}

func (f *fakeCreatorRepo) Search(_ context.Context, search, province string) ([]db_models.Creator, error) {
	f.lastSearch = search
	f.lastProvince = province
	out := make([]db_models.Creator, 0, len(f.creators))
	for _, c := range f.creators {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCreatorRepo) UpdateRatingStats(_ context.Context, id string, average float64, total int) error {
	f.statsID = id
	f.statsAverage = average
	f.statsTotal = total
	return nil
}

type fakeCollaborationRepo struct {
	collaborations map[string]*db_models.Collaboration

	lastSearch   string
	lastProvince string
}

func newFakeCollaborationRepo() *fakeCollaborationRepo {
	return &fakeCollaborationRepo{collaborations: make(map[string]*db_models.Collaboration)}
}

func (f *fakeCollaborationRepo) InsertTx(_ context.Context, collaboration *db_models.Collaboration) error {
	if collaboration.ID == uuid.Nil {
		collaboration.ID = uuid.New()
	}
	f.collaborations[collaboration.ID.String()] = collaboration
	return nil
}

func (f *fakeCollaborationRepo) FindByID(_ context.Context, id string) (*db_models.Collaboration, error) {
	return f.collaborations[id], nil
}

func (f *fakeCollaborationRepo) SearchPending(_ context.Context, search, province string) ([]db_models.Collaboration, error) {
	f.lastSearch = search
	f.lastProvince = province
	out := make([]db_models.Collaboration, 0)
	for _, c := range f.collaborations {
		if c.Status == db_models.StatusPending {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCollaborationRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]db_models.Collaboration, error) {
	out := make([]db_models.Collaboration, 0)
	for _, c := range f.collaborations {
		if c.RestaurantID.String() == restaurantID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCollaborationRepo) Update(_ context.Context, collaboration *db_models.Collaboration) error {
	f.collaborations[collaboration.ID.String()] = collaboration
	return nil
}

func (f *fakeCollaborationRepo) CountByRestaurantAndStatus(_ context.Context, restaurantID string, status db_models.CollaborationStatus) (int64, error) {
	var n int64
	for _, c := range f.collaborations {
		if c.RestaurantID.String() == restaurantID && c.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeApplicationRepo struct {
	applications []*db_models.CollaborationApplication
}

func (f *fakeApplicationRepo) InsertTx(_ context.Context, application *db_models.CollaborationApplication) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	f.applications = append(f.applications, application)
	return nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id string) (*db_models.CollaborationApplication, error) {
	for _, a := range f.applications {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationRepo) ListByCollaboration(_ context.Context, collaborationID string) ([]db_models.CollaborationApplication, error) {
	out := make([]db_models.CollaborationApplication, 0)
	for _, a := range f.applications {
		if a.CollaborationID.String() == collaborationID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByCollaborationAndCreator(_ context.Context, collaborationID, creatorID string) (*db_models.CollaborationApplication, error) {
	for _, a := range f.applications {
		if a.CollaborationID.String() == collaborationID && a.CreatorID.String() == creatorID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status db_models.CollaborationStatus) error {
	for _, a := range f.applications {
		if a.ID.String() == id {
			a.Status = status
			return nil
		}
	}
	return errBoom
}

func (f *fakeApplicationRepo) CountByCreatorAndStatus(_ context.Context, creatorID string, status db_models.CollaborationStatus) (int64, error) {
	var n int64
	for _, a := range f.applications {
		if a.CreatorID.String() == creatorID && a.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeApplicationRepo) CountPendingForRestaurant(_ context.Context, _ string) (int64, error) {
	var n int64
	for _, a := range f.applications {
		if a.Status == db_models.StatusPending {
			n++
		}
	}
	return n, nil
}

type fakeNotificationRepo struct {
	notifications []*db_models.Notification
}

func (f *fakeNotificationRepo) InsertTx(_ context.Context, notification *db_models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string) ([]db_models.Notification, error) {
	out := make([]db_models.Notification, 0)
	for _, n := range f.notifications {
		if n.UserID.String() == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) FindByID(_ context.Context, id string) (*db_models.Notification, error) {
	for _, n := range f.notifications {
		if n.ID.String() == id {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	for _, n := range f.notifications {
		if n.ID.String() == id {
			n.Read = true
			return nil
		}
	}
	return errBoom
}

type fakeMailService struct {
	sentTo     []string
	sentTitles []string
}

func (f *fakeMailService) SendApplicationAccepted(to, _, collaborationTitle string) error {
	f.sentTo = append(f.sentTo, to)
	f.sentTitles = append(f.sentTitles, collaborationTitle)
	return nil
}
