package posts

import (
	"context"

	"blog-api/core/apierr"
	"blog-api/core/reconcile"
	"blog-api/core/store"
	"blog-api/core/utils"

	"go.uber.org/zap"
)

const (
	qSelectPosts = "select * from posts"
	qSelectPost  = "select * from posts where id = ?"
	qSearchPosts = "select * from posts where title like ? or content like ? or category like ? or tags like ?"
	qPostExists  = "select 1 from posts where id = ?"
	qInsertPost  = "insert into posts(title, content, category, tags, createdAt, updatedAt) values (?, ?, ?, ?, ?, ?)"
	qUpdatePost  = "update posts set title = ?, content = ?, category = ?, tags = ?, updatedAt = ? where id = ?"
	qDeletePost  = "delete from posts where id = ?"
)

// Service handles post operations.
type Service struct {
	store  store.Adapter
	logger *zap.Logger
}

// NewService creates a new post service.
func NewService(st store.Adapter, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// List returns all posts.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	rows, err := s.store.Query(ctx, qSelectPosts)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return postsFromRows(rows), nil
}

// Search returns posts whose title, content, category or tags contain term.
func (s *Service) Search(ctx context.Context, term string) ([]Post, error) {
	like := "%" + term + "%"
	rows, err := s.store.Query(ctx, qSearchPosts, like, like, like, like)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return postsFromRows(rows), nil
}

// Get returns a single post by id.
func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	rows, err := s.store.Query(ctx, qSelectPost, id)
	if err != nil {
		return nil, apierr.Store(err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound("Post wasn't found!")
	}
	p := postFromRow(rows[0])
	return &p, nil
}

// Create validates the payload and inserts a new post.
func (s *Service) Create(ctx context.Context, payload map[string]any) (*Post, error) {
	fields, err := schema.Reconcile(reconcile.OpCreate, payload, nil)
	if err != nil {
		return nil, err
	}

	now := utils.Now()
	res, err := s.store.Exec(ctx, qInsertPost,
		fields["title"], fields["content"], fields["category"], fields["tags"], now, now)
	if err != nil {
		return nil, apierr.Store(err)
	}

	fields["id"] = res.LastInsertID
	fields["createdAt"] = now
	fields["updatedAt"] = now
	p := postFromRow(fields)
	return &p, nil
}

// Replace fully replaces an existing post (PUT semantics).
func (s *Service) Replace(ctx context.Context, id int64, payload map[string]any) (*Post, error) {
	return s.update(ctx, id, payload, reconcile.OpReplace)
}

// Merge partially updates an existing post (PATCH semantics).
func (s *Service) Merge(ctx context.Context, id int64, payload map[string]any) (*Post, error) {
	return s.update(ctx, id, payload, reconcile.OpMerge)
}

// update re-fetches the stored row, reconciles the payload against it and
// persists the complete final field set in a single statement.
func (s *Service) update(ctx context.Context, id int64, payload map[string]any, op reconcile.Op) (*Post, error) {
	rows, err := s.store.Query(ctx, qSelectPost, id)
	if err != nil {
		return nil, apierr.Store(err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound("Post wasn't found!")
	}
	stored := rows[0]

	fields, err := schema.Reconcile(op, payload, stored)
	if err != nil {
		return nil, err
	}

	now := utils.Now()
	if _, err := s.store.Exec(ctx, qUpdatePost,
		fields["title"], fields["content"], fields["category"], fields["tags"], now, id); err != nil {
		return nil, apierr.Store(err)
	}

	fields["id"] = id
	fields["createdAt"] = stored["createdAt"]
	fields["updatedAt"] = now
	p := postFromRow(fields)
	return &p, nil
}

// Delete removes a post after confirming it exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	rows, err := s.store.Query(ctx, qPostExists, id)
	if err != nil {
		return apierr.Store(err)
	}
	if len(rows) == 0 {
		return apierr.NotFound("Post wasn't found!")
	}
	if _, err := s.store.Exec(ctx, qDeletePost, id); err != nil {
		return apierr.Store(err)
	}
	return nil
}

func postsFromRows(rows []map[string]any) []Post {
	posts := make([]Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, postFromRow(row))
	}
	return posts
}
