package services

import (
	"context"
	"sort"
	"time"

	"github.com/classforum/classforum/internal/app/models"
	"github.com/classforum/classforum/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the SQL repositories' error
// contracts so the services can be tested without a database.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) addUser(u *models.User) *models.User {
	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.FirstName == user.FirstName && u.LastName == user.LastName {
			return apperrors.ErrDuplicateIdentity
		}
	}
	r.addUser(user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, firstName, lastName string) (*models.User, error) {
	for _, u := range r.users {
		if u.FirstName == firstName && u.LastName == lastName {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) IdentityExists(_ context.Context, firstName, lastName string) (bool, error) {
	for _, u := range r.users {
		if u.FirstName == firstName && u.LastName == lastName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) UpdateTheme(_ context.Context, userID int64, theme string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Theme = theme
	return nil
}

func (r *fakeUserRepo) SetBanned(_ context.Context, userID int64, banned bool) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsBanned = banned
	return nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) ListPeers(_ context.Context, excludeUserID int64) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		if u.ID == excludeUserID || u.IsBanned {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeSession struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeSessionRepo struct {
	sessions map[string]*fakeSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*fakeSession{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	if _, ok := r.sessions[token]; ok {
		return apperrors.ErrConflict
	}
	r.sessions[token] = &fakeSession{userID: userID, expiry: expiryDate}
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (int64, time.Time, error) {
	s, ok := r.sessions[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if s.revoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	if s.expiry.Before(time.Now()) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return s.userID, s.expiry, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	s, ok := r.sessions[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	s.revoked = true
	return nil
}

func (r *fakeSessionRepo) RevokeAllForUser(_ context.Context, userID int64) error {
	for _, s := range r.sessions {
		if s.userID == userID {
			s.revoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) liveCount(userID int64) int {
	n := 0
	for _, s := range r.sessions {
		if s.userID == userID && !s.revoked {
			n++
		}
	}
	return n
}

type fakePostRepo struct {
	posts  map[int64]*models.Post
	nextID int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int64]*models.Post{}, nextID: 1}
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = r.nextID
	r.nextID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	return p, nil
}

func (r *fakePostRepo) ListPublishedByType(_ context.Context, postType models.PostType) ([]*models.Post, error) {
	out := []*models.Post{}
	for _, p := range r.posts {
		if p.PostType == postType && p.Status == models.StatusPublished {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakePostRepo) ListSuggested(_ context.Context) ([]*models.Post, error) {
	out := []*models.Post{}
	for _, p := range r.posts {
		if p.Status == models.StatusSuggested {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakePostRepo) Publish(_ context.Context, id int64) error {
	p, ok := r.posts[id]
	if !ok {
		return apperrors.ErrPostNotFound
	}
	p.Status = models.StatusPublished
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type fakeHomeworkRepo struct {
	homeworks []*models.Homework
	nextID    int64
}

func newFakeHomeworkRepo() *fakeHomeworkRepo {
	return &fakeHomeworkRepo{nextID: 1}
}

func (r *fakeHomeworkRepo) Create(_ context.Context, homework *models.Homework) error {
	homework.ID = r.nextID
	r.nextID++
	if homework.CreatedAt.IsZero() {
		homework.CreatedAt = time.Now()
	}
	r.homeworks = append(r.homeworks, homework)
	return nil
}

func (r *fakeHomeworkRepo) ListAll(_ context.Context) ([]*models.Homework, error) {
	out := make([]*models.Homework, len(r.homeworks))
	copy(out, r.homeworks)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakeChatRepo struct {
	messages []*models.ChatMessage
	nextID   int64
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{nextID: 1}
}

func (r *fakeChatRepo) Create(_ context.Context, message *models.ChatMessage) error {
	message.ID = r.nextID
	r.nextID++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) ListAll(_ context.Context) ([]*models.ChatMessage, error) {
	out := make([]*models.ChatMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *fakeChatRepo) ListSince(_ context.Context, sinceID, excludeUserID int64) ([]*models.ChatMessage, error) {
	out := []*models.ChatMessage{}
	for _, m := range r.messages {
		if m.ID > sinceID && m.UserID != excludeUserID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []*models.Message
	nextID   int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{nextID: 1}
}

func (r *fakeMessageRepo) Create(_ context.Context, message *models.Message) error {
	message.ID = r.nextID
	r.nextID++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) GetConversation(_ context.Context, readerID, otherID int64) ([]*models.Message, error) {
	out := []*models.Message{}
	for _, m := range r.messages {
		if (m.SenderID == readerID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == readerID) {
			out = append(out, m)
		}
	}
	// Opening the conversation marks incoming messages read
	for _, m := range out {
		if m.ReceiverID == readerID {
			m.IsRead = true
		}
	}
	return out, nil
}
