package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- weekly sessions ---

type sessionKey struct {
	userID      string
	workoutType domain.WorkoutType
	day         domain.DayOfWeek
	weekStart   time.Time
}

// memSessionRepo enforces the same unique key as the mongo index.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions []domain.Session
	keys     map[sessionKey]struct{}

	insertErr error
	findErr   error
	inserts   int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{keys: map[sessionKey]struct{}{}}
}

func (r *memSessionRepo) Insert(_ context.Context, session *domain.Session) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	key := sessionKey{session.UserID, session.WorkoutType, session.DayOfWeek, session.WeekStart.UTC()}
	if _, exists := r.keys[key]; exists {
		return nil, repository.ErrDuplicate
	}
	r.keys[key] = struct{}{}
	stored := *session
	stored.ID = primitive.NewObjectID()
	r.sessions = append(r.sessions, stored)
	return &stored, nil
}

func (r *memSessionRepo) match(filter repository.SessionFilter) []domain.Session {
	var out []domain.Session
	for _, s := range r.sessions {
		if s.UserID != filter.UserID || s.WorkoutType != filter.WorkoutType {
			continue
		}
		if filter.DayOfWeek != "" && s.DayOfWeek != filter.DayOfWeek {
			continue
		}
		if s.CompletedAt.Before(filter.From) || s.CompletedAt.After(filter.To) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.Before(out[j].CompletedAt) })
	return out
}

func (r *memSessionRepo) FindOne(_ context.Context, filter repository.SessionFilter) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	found := r.match(filter)
	if len(found) == 0 {
		return nil, repository.ErrNotFound
	}
	return &found[0], nil
}

func (r *memSessionRepo) FindMany(_ context.Context, filter repository.SessionFilter) ([]domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.match(filter), nil
}

// blockingSessionRepo waits for the context to expire on every call.
type blockingSessionRepo struct{}

func (blockingSessionRepo) Insert(ctx context.Context, _ *domain.Session) (*domain.Session, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingSessionRepo) FindOne(ctx context.Context, _ repository.SessionFilter) (*domain.Session, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingSessionRepo) FindMany(ctx context.Context, _ repository.SessionFilter) ([]domain.Session, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// --- exercise log ---

type memExerciseLogRepo struct {
	mu        sync.Mutex
	entries   []domain.ExerciseLogEntry
	createErr error
}

func (r *memExerciseLogRepo) Create(_ context.Context, entry *domain.ExerciseLogEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	entry.ID = primitive.NewObjectID()
	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *memExerciseLogRepo) FindByDay(_ context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, weekStart time.Time) ([]domain.ExerciseLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ExerciseLogEntry
	for _, e := range r.entries {
		if e.UserID == userID && e.WorkoutType == workoutType && e.DayOfWeek == day && e.WeekStart.Equal(weekStart) {
			out = append(out, e)
		}
	}
	return out, nil
}

// --- users ---

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *memUserRepo) add(name string, role domain.Role) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := &domain.User{ID: primitive.NewObjectID(), Name: name, Email: name + "@example.com", Role: role}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *memUserRepo) update(id primitive.ObjectID, fn func(u *domain.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(u)
	return nil
}

func (r *memUserRepo) UpdateGoals(_ context.Context, id primitive.ObjectID, goals []domain.WorkoutType) error {
	return r.update(id, func(u *domain.User) { u.Goals = goals })
}

func (r *memUserRepo) UpdateNotifications(_ context.Context, id primitive.ObjectID, prefs domain.NotificationPrefs) error {
	return r.update(id, func(u *domain.User) { u.Notifications = prefs })
}

func (r *memUserRepo) UpdateBodyMetrics(_ context.Context, id primitive.ObjectID, heightCm, weightKg float64) error {
	return r.update(id, func(u *domain.User) { u.HeightCm, u.WeightKg = heightCm, weightKg })
}

func (r *memUserRepo) SetAvatarKey(_ context.Context, id primitive.ObjectID, key string) error {
	return r.update(id, func(u *domain.User) { u.AvatarKey = key })
}

// --- feed ---

type memPostRepo struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*domain.Post
	clock time.Time
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{
		posts: map[primitive.ObjectID]*domain.Post{},
		clock: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
	}
}

func (r *memPostRepo) Create(_ context.Context, post *domain.Post) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = r.clock.Add(time.Minute)
	post.ID = primitive.NewObjectID()
	post.CreatedAt = r.clock
	post.UpdatedAt = r.clock
	stored := *post
	r.posts[post.ID] = &stored
	return post.ID, nil
}

func (r *memPostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (r *memPostRepo) List(_ context.Context, limit int, before time.Time) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Post
	for _, p := range r.posts {
		if before.IsZero() || p.CreatedAt.Before(before) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) IncrementCounters(_ context.Context, id primitive.ObjectID, likes, comments int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.LikeCount += likes
	p.CommentCount += comments
	return nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments map[primitive.ObjectID]*domain.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[primitive.ObjectID]*domain.Comment{}}
}

func (r *memCommentRepo) Create(_ context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = primitive.NewObjectID()
	stored := *comment
	r.comments[comment.ID] = &stored
	return comment.ID, nil
}

func (r *memCommentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCommentRepo) ListByPost(_ context.Context, postID primitive.ObjectID) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.comments {
		if c.PostID == postID {
			delete(r.comments, id)
		}
	}
	return nil
}

type likeKey struct{ postID, userID primitive.ObjectID }

type memLikeRepo struct {
	mu    sync.Mutex
	likes map[likeKey]struct{}
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: map[likeKey]struct{}{}}
}

func (r *memLikeRepo) Create(_ context.Context, like *domain.Like) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{like.PostID, like.UserID}
	if _, ok := r.likes[key]; ok {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	r.likes[key] = struct{}{}
	like.ID = primitive.NewObjectID()
	return like.ID, nil
}

func (r *memLikeRepo) Delete(_ context.Context, postID, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{postID, userID}
	if _, ok := r.likes[key]; !ok {
		return repository.ErrNotFound
	}
	delete(r.likes, key)
	return nil
}

func (r *memLikeRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.likes {
		if k.postID == postID {
			delete(r.likes, k)
		}
	}
	return nil
}

// --- storage, publisher, recorder ---

type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
	failURL bool
}

func (s *fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	if s.failURL {
		return "", errors.New("presign failed")
	}
	return "https://upload.example.com/" + objectKey, nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if s.failURL {
		return "", errors.New("presign failed")
	}
	return "https://download.example.com/" + objectKey, nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, objectKey)
	return nil
}

type fakePublisher struct {
	mu         sync.Mutex
	events     []domain.FeedEvent
	publishErr error
}

func (p *fakePublisher) Publish(_ context.Context, event domain.FeedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.publishErr
}

func (p *fakePublisher) Subscribe(ctx context.Context) (<-chan domain.FeedEvent, error) {
	ch := make(chan domain.FeedEvent)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (p *fakePublisher) types() []domain.FeedEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.FeedEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type countingRecorder struct {
	mu        sync.Mutex
	completed map[domain.WorkoutType]int
	rejected  map[string]int
	logged    int
	feed      map[domain.FeedEventType]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		completed: map[domain.WorkoutType]int{},
		rejected:  map[string]int{},
		feed:      map[domain.FeedEventType]int{},
	}
}

func (r *countingRecorder) SessionCompleted(wt domain.WorkoutType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[wt]++
}

func (r *countingRecorder) CompletionRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected[reason]++
}

func (r *countingRecorder) ExerciseLogged(domain.WorkoutType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logged++
}

func (r *countingRecorder) FeedEvent(t domain.FeedEventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feed[t]++
}
