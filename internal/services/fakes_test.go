package services

import (
	"context"
	"sort"
	"sync"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repo implementing the models repo interfaces, with the same
// error contract as the mongo implementation.
type memRepo struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]*models.User
	profiles map[primitive.ObjectID]*models.Profile // keyed by owner
	posts    map[primitive.ObjectID]*models.Post
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:    make(map[primitive.ObjectID]*models.User),
		profiles: make(map[primitive.ObjectID]*models.Profile),
		posts:    make(map[primitive.ObjectID]*models.Post),
	}
}

func (m *memRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = user.BeforeCreate()
	cp := *user
	m.users[user.ID] = &cp
	return user, nil
}

func (m *memRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (m *memRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *memRepo) UpsertProfile(ctx context.Context, ownerID primitive.ObjectID, fields *models.Profile) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.profiles[ownerID]
	if !ok {
		cp := *fields
		cp.ID = primitive.NewObjectID()
		cp.User = ownerID
		cp.Experience = []models.Experience{}
		cp.Education = []models.Education{}
		m.profiles[ownerID] = &cp
		out := cp
		return &out, nil
	}

	existing.Company = fields.Company
	existing.Website = fields.Website
	existing.Location = fields.Location
	existing.Status = fields.Status
	existing.Skills = fields.Skills
	existing.Bio = fields.Bio
	existing.GithubUsername = fields.GithubUsername
	existing.Social = fields.Social
	out := *existing
	return &out, nil
}

func (m *memRepo) GetProfileByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[ownerID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Profile
	for _, p := range m.profiles {
		cp := *p
		if u, ok := m.users[p.User]; ok {
			cp.Owner = &models.ProfileUser{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepo) ReplaceProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *profile
	m.profiles[profile.User] = &cp
	return profile, nil
}

func (m *memRepo) DeleteProfile(ctx context.Context, ownerID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, ownerID)
	return nil
}

func (m *memRepo) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = post.BeforeCreate()
	cp := *post
	m.posts[post.ID] = &cp
	return post, nil
}

func (m *memRepo) ListPosts(ctx context.Context) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Post
	for _, p := range m.posts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memRepo) GetPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *p
	cp.Likes = append([]models.Like(nil), p.Likes...)
	cp.Comments = append([]models.Comment(nil), p.Comments...)
	return &cp, nil
}

func (m *memRepo) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
	return nil
}

func (m *memRepo) DeletePostsByAuthor(ctx context.Context, authorID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.posts {
		if p.User == authorID {
			delete(m.posts, id)
		}
	}
	return nil
}

func (m *memRepo) UpdateLikes(ctx context.Context, postID primitive.ObjectID, likes []models.Like) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if !ok {
		return apperr.ErrNotFound
	}
	p.Likes = append([]models.Like(nil), likes...)
	return nil
}

func (m *memRepo) UpdateComments(ctx context.Context, postID primitive.ObjectID, comments []models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if !ok {
		return apperr.ErrNotFound
	}
	p.Comments = append([]models.Comment(nil), comments...)
	return nil
}
