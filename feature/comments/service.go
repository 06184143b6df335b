package comments

import (
	"context"

	"blog-api/core/apierr"
	"blog-api/core/reconcile"
	"blog-api/core/store"
	"blog-api/core/utils"

	"go.uber.org/zap"
)

const (
	qSelectComments = "select * from comments where postID = ?"
	qSelectComment  = "select * from comments where postID = ? and id = ?"
	qCommentByID    = "select * from comments where id = ?"
	qPostExists     = "select 1 from posts where id = ?"
	qInsertComment  = "insert into comments(postID, author, content, createdAt, updatedAt) values (?, ?, ?, ?, ?)"
	qUpdateComment  = "update comments set author = ?, content = ?, updatedAt = ? where id = ?"
	qDeleteComment  = "delete from comments where id = ?"
)

// Service handles comment operations.
type Service struct {
	store  store.Adapter
	logger *zap.Logger
}

// NewService creates a new comment service.
func NewService(st store.Adapter, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// List returns all comments of a post. The post must exist; an existing post
// with no comments yields an empty list, not a 404.
func (s *Service) List(ctx context.Context, postID int64) ([]Comment, error) {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}
	rows, err := s.store.Query(ctx, qSelectComments, postID)
	if err != nil {
		return nil, apierr.Store(err)
	}
	comments := make([]Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, commentFromRow(row))
	}
	return comments, nil
}

// Get returns a single comment addressed under its post.
func (s *Service) Get(ctx context.Context, postID, commentID int64) (*Comment, error) {
	rows, err := s.store.Query(ctx, qSelectComment, postID, commentID)
	if err != nil {
		return nil, apierr.Store(err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound("Comment wasn't found!")
	}
	c := commentFromRow(rows[0])
	return &c, nil
}

// Create inserts a comment under an existing post. The parent is probed
// before the payload is validated, so a missing post is a 404 no matter what
// the body holds.
func (s *Service) Create(ctx context.Context, postID int64, payload map[string]any) (*Comment, error) {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}
	fields, err := schema.Reconcile(reconcile.OpCreate, payload, nil)
	if err != nil {
		return nil, err
	}

	now := utils.Now()
	res, err := s.store.Exec(ctx, qInsertComment, postID, fields["author"], fields["content"], now, now)
	if err != nil {
		return nil, apierr.Store(err)
	}

	fields["id"] = res.LastInsertID
	fields["postID"] = postID
	fields["createdAt"] = now
	fields["updatedAt"] = now
	c := commentFromRow(fields)
	return &c, nil
}

// Replace fully replaces an existing comment (PUT semantics).
func (s *Service) Replace(ctx context.Context, postID, commentID int64, payload map[string]any) (*Comment, error) {
	return s.update(ctx, postID, commentID, payload, reconcile.OpReplace)
}

// Merge partially updates an existing comment (PATCH semantics).
func (s *Service) Merge(ctx context.Context, postID, commentID int64, payload map[string]any) (*Comment, error) {
	return s.update(ctx, postID, commentID, payload, reconcile.OpMerge)
}

func (s *Service) update(ctx context.Context, postID, commentID int64, payload map[string]any, op reconcile.Op) (*Comment, error) {
	stored, err := s.fetchOwned(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	fields, err := schema.Reconcile(op, payload, stored)
	if err != nil {
		return nil, err
	}

	now := utils.Now()
	if _, err := s.store.Exec(ctx, qUpdateComment, fields["author"], fields["content"], now, commentID); err != nil {
		return nil, apierr.Store(err)
	}

	fields["id"] = commentID
	fields["postID"] = postID
	fields["createdAt"] = stored["createdAt"]
	fields["updatedAt"] = now
	c := commentFromRow(fields)
	return &c, nil
}

// Delete removes a comment after confirming it exists and belongs to the
// addressed post.
func (s *Service) Delete(ctx context.Context, postID, commentID int64) error {
	if _, err := s.fetchOwned(ctx, postID, commentID); err != nil {
		return err
	}
	if _, err := s.store.Exec(ctx, qDeleteComment, commentID); err != nil {
		return apierr.Store(err)
	}
	return nil
}

// fetchOwned loads a comment by id and verifies it belongs to the addressed
// post. A comment that exists under another post is a parent mismatch (400),
// not a 404: the comment exists, just not where the request claims.
func (s *Service) fetchOwned(ctx context.Context, postID, commentID int64) (map[string]any, error) {
	rows, err := s.store.Query(ctx, qCommentByID, commentID)
	if err != nil {
		return nil, apierr.Store(err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound("Comment wasn't found!")
	}
	stored := rows[0]
	if utils.ToInt64(stored["postID"]) != postID {
		return nil, apierr.Mismatch("Comment doesn't belong to the specified post!")
	}
	return stored, nil
}

func (s *Service) checkPostExists(ctx context.Context, postID int64) error {
	rows, err := s.store.Query(ctx, qPostExists, postID)
	if err != nil {
		return apierr.Store(err)
	}
	if len(rows) == 0 {
		return apierr.NotFound("Post wasn't found!")
	}
	return nil
}
