package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

type sessionsRepo struct {
	db dbtx
}

const sessionColumns = `id, user_id, device_id, device_name, ip, iat, exp`

func scanSession(row interface{ Scan(...any) error }) (domain.Session, error) {
	var (
		s        domain.Session
		iat, exp int64
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.DeviceID, &s.DeviceName, &s.IP, &iat, &exp); err != nil {
		return domain.Session{}, err
	}
	s.IssuedAt = fromUnix(iat)
	s.ExpiresAt = fromUnix(exp)
	return s, nil
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.DeviceID, s.DeviceName, s.IP, toUnix(s.IssuedAt), toUnix(s.ExpiresAt))
	return mapConflict(err, map[string]string{"sessions.device_id": "deviceId"})
}

func (r *sessionsRepo) GetSessionByDeviceID(ctx context.Context, deviceID string) (domain.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE device_id = ?`, deviceID))
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) ListSessionsByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE user_id = ? ORDER BY iat DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sessionsRepo) DeleteSessionByDeviceID(ctx context.Context, deviceID string) (bool, error) {
	return affected(r.db.ExecContext(ctx, `DELETE FROM sessions WHERE device_id = ?`, deviceID))
}

func (r *sessionsRepo) DeleteSessionsExceptDevice(ctx context.Context, userID, keepDeviceID string) (bool, error) {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE user_id = ? AND device_id <> ?`, userID, keepDeviceID))
}

func (r *sessionsRepo) UpdateSessionIatExp(ctx context.Context, userID, deviceID string, prevIat, iat, exp time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET iat = ?, exp = ? WHERE user_id = ? AND device_id = ? AND iat = ?`,
		toUnix(iat), toUnix(exp), userID, deviceID, toUnix(prevIat))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *sessionsRepo) DeleteSessionsByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE exp <= ?`, toUnix(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
