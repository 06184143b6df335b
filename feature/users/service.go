package users

import (
	"context"

	"blog-api/core/apierr"
	"blog-api/core/reconcile"
	"blog-api/core/store"
	"blog-api/core/utils"

	"go.uber.org/zap"
)

const (
	qSelectUsers    = "select id, username, email, createdAt, updatedAt from users"
	qSelectUser     = "select id, username, email, createdAt, updatedAt from users where username = ?"
	qSelectUserFull = "select * from users where username = ?"
	qUserTaken      = "select 1 from users where (username = ? or email = ?) and id <> ?"
	qInsertUser     = "insert into users(username, email, password, createdAt, updatedAt) values (?, ?, ?, ?, ?)"
	qUpdateUser     = "update users set username = ?, email = ?, password = ?, updatedAt = ? where id = ?"
	qDeleteUser     = "delete from users where id = ?"
)

// Service handles user operations.
type Service struct {
	store  store.Adapter
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(st store.Adapter, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// List returns all users without their password hashes.
func (s *Service) List(ctx context.Context) ([]User, error) {
	rows, err := s.store.Query(ctx, qSelectUsers)
	if err != nil {
		return nil, apierr.Store(err)
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userFromRow(row))
	}
	return users, nil
}

// Get returns a single user by username.
func (s *Service) Get(ctx context.Context, username string) (*User, error) {
	rows, err := s.store.Query(ctx, qSelectUser, username)
	if err != nil {
		return nil, apierr.Store(err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound("User wasn't found!")
	}
	u := userFromRow(rows[0])
	return &u, nil
}

// Create validates the payload, enforces uniqueness and inserts a new user.
func (s *Service) Create(ctx context.Context, payload map[string]any) (*User, error) {
	fields, err := schema.Reconcile(reconcile.OpCreate, payload, nil)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, fields, 0); err != nil {
		return nil, err
	}

	now := utils.Now()
	res, err := s.store.Exec(ctx, qInsertUser,
		fields["username"], fields["email"], fields["password"], now, now)
	if err != nil {
		return nil, apierr.Store(err)
	}

	fields["id"] = res.LastInsertID
	fields["createdAt"] = now
	fields["updatedAt"] = now
	u := userFromRow(fields)
	return &u, nil
}

// Replace fully replaces an existing user (PUT semantics).
func (s *Service) Replace(ctx context.Context, username string, payload map[string]any) (*User, error) {
	return s.update(ctx, username, payload, reconcile.OpReplace)
}

// Merge partially updates an existing user (PATCH semantics).
func (s *Service) Merge(ctx context.Context, username string, payload map[string]any) (*User, error) {
	return s.update(ctx, username, payload, reconcile.OpMerge)
}

// update re-fetches the stored row (hash included, so a merge that omits the
// password carries it over), reconciles, re-checks uniqueness against every
// other row and persists the complete final field set.
func (s *Service) update(ctx context.Context, username string, payload map[string]any, op reconcile.Op) (*User, error) {
	rows, err := s.store.Query(ctx, qSelectUserFull, username)
	if err != nil {
		return nil, apierr.Store(err)
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound("User wasn't found!")
	}
	stored := rows[0]
	id := utils.ToInt64(stored["id"])

	fields, err := schema.Reconcile(op, payload, stored)
	if err != nil {
		return nil, err
	}
	// Excluding the target row itself means resubmitting an unchanged
	// username or email is never a conflict.
	if err := s.checkUnique(ctx, fields, id); err != nil {
		return nil, err
	}

	now := utils.Now()
	if _, err := s.store.Exec(ctx, qUpdateUser,
		fields["username"], fields["email"], fields["password"], now, id); err != nil {
		return nil, apierr.Store(err)
	}

	fields["id"] = id
	fields["createdAt"] = stored["createdAt"]
	fields["updatedAt"] = now
	u := userFromRow(fields)
	return &u, nil
}

// Delete removes a user after confirming it exists.
func (s *Service) Delete(ctx context.Context, username string) error {
	rows, err := s.store.Query(ctx, qSelectUserFull, username)
	if err != nil {
		return apierr.Store(err)
	}
	if len(rows) == 0 {
		return apierr.NotFound("User wasn't found!")
	}
	if _, err := s.store.Exec(ctx, qDeleteUser, utils.ToInt64(rows[0]["id"])); err != nil {
		return apierr.Store(err)
	}
	return nil
}

// checkUnique rejects the final username/email pair when any row other than
// the target (id 0 for creates) already carries either value.
func (s *Service) checkUnique(ctx context.Context, fields map[string]any, id int64) error {
	rows, err := s.store.Query(ctx, qUserTaken, fields["username"], fields["email"], id)
	if err != nil {
		return apierr.Store(err)
	}
	if len(rows) > 0 {
		return apierr.Conflict("Username or email is already in use!")
	}
	return nil
}
