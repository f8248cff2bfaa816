package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
)

// SQLUMKMRepository reads the umkm table over a direct PostgreSQL or SQLite connection
type SQLUMKMRepository struct {
	client database.SQLClient
}

func NewSQLUMKMRepository(client database.SQLClient) repository.UMKMRepository {
	return &SQLUMKMRepository{
		client: client,
	}
}

const umkmSelect = `SELECT id, nama_perusahaan, jenis, kecamatan, alamat, no_telepon, waktu_buka, deskripsi, gambar_url, latitude, longitude FROM umkm`

const umkmReturning = ` RETURNING id, nama_perusahaan, jenis, kecamatan, alamat, no_telepon, waktu_buka, deskripsi, gambar_url, latitude, longitude`

// likeEscaper makes LIKE wildcards in search text match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUMKMRow(s rowScanner) (*model.UMKMRow, error) {
	var row model.UMKMRow
	var phone, hours, desc, image sql.NullString
	err := s.Scan(&row.ID, &row.NamaPerusahaan, &row.Jenis, &row.Kecamatan, &row.Alamat,
		&phone, &hours, &desc, &image, &row.Latitude, &row.Longitude)
	if err != nil {
		return nil, err
	}
	row.NoTelepon = nullString(phone)
	row.WaktuBuka = nullString(hours)
	row.Deskripsi = nullString(desc)
	row.GambarURL = nullString(image)
	return &row, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func (r *SQLUMKMRepository) Find(ctx context.Context, filter model.UMKMFilter) ([]model.UMKM, error) {
	d := r.client.Dialect()

	var where []string
	var args []any
	if filter.HasCategory() {
		args = append(args, filter.Category)
		where = append(where, "jenis = "+d.Placeholder(len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(search))+"%")
		p := d.Placeholder(len(args))
		if d == database.DialectSQLite {
			// SQLite reuses positional ? by appearance order
			args = append(args, args[len(args)-1])
			where = append(where, fmt.Sprintf(`(LOWER(nama_perusahaan) LIKE %s ESCAPE '\' OR LOWER(alamat) LIKE %s ESCAPE '\')`, p, d.Placeholder(len(args))))
		} else {
			where = append(where, fmt.Sprintf(`(LOWER(nama_perusahaan) LIKE %s ESCAPE '\' OR LOWER(alamat) LIKE %s ESCAPE '\')`, p, p))
		}
	}

	query := umkmSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := r.client.GetDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch umkm: %w", err)
	}
	defer rows.Close()

	result := []model.UMKM{}
	for rows.Next() {
		row, err := scanUMKMRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan umkm: %w", err)
		}
		result = append(result, row.ToUMKM())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate umkm: %w", err)
	}

	return result, nil
}

func (r *SQLUMKMRepository) GetByID(ctx context.Context, id int64) (*model.UMKM, error) {
	query := umkmSelect + " WHERE id = " + r.client.Dialect().Placeholder(1)

	row, err := scanUMKMRow(r.client.GetDB().QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("umkm %d: %w", id, model.ErrUMKMNotFound)
		}
		return nil, fmt.Errorf("failed to fetch umkm %d: %w", id, err)
	}

	u := row.ToUMKM()
	return &u, nil
}

func (r *SQLUMKMRepository) Create(ctx context.Context, row *model.UMKMRow) (*model.UMKM, error) {
	d := r.client.Dialect()
	placeholders := make([]string, 10)
	for i := range placeholders {
		placeholders[i] = d.Placeholder(i + 1)
	}

	query := `INSERT INTO umkm (nama_perusahaan, jenis, kecamatan, alamat, no_telepon, waktu_buka, deskripsi, latitude, longitude, password_akses) VALUES (` +
		strings.Join(placeholders, ", ") + `)` + umkmReturning

	created, err := scanUMKMRow(r.client.GetDB().QueryRowContext(ctx, query,
		row.NamaPerusahaan, row.Jenis, row.Kecamatan, row.Alamat,
		row.NoTelepon, row.WaktuBuka, row.Deskripsi,
		row.Latitude, row.Longitude, row.PasswordAkses,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create umkm: %w", err)
	}

	u := created.ToUMKM()
	return &u, nil
}

func (r *SQLUMKMRepository) Update(ctx context.Context, id int64, row *model.UMKMRow) (*model.UMKM, error) {
	d := r.client.Dialect()

	columns := []string{"nama_perusahaan", "jenis", "kecamatan", "alamat", "no_telepon", "waktu_buka", "deskripsi", "latitude", "longitude"}
	args := []any{row.NamaPerusahaan, row.Jenis, row.Kecamatan, row.Alamat, row.NoTelepon, row.WaktuBuka, row.Deskripsi, row.Latitude, row.Longitude}
	if row.PasswordAkses != nil {
		columns = append(columns, "password_akses")
		args = append(args, *row.PasswordAkses)
	}

	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = col + " = " + d.Placeholder(i+1)
	}
	args = append(args, id)

	query := "UPDATE umkm SET " + strings.Join(sets, ", ") + " WHERE id = " + d.Placeholder(len(args)) + umkmReturning

	updated, err := scanUMKMRow(r.client.GetDB().QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("umkm %d: %w", id, model.ErrUMKMNotFound)
		}
		return nil, fmt.Errorf("failed to update umkm %d: %w", id, err)
	}

	u := updated.ToUMKM()
	return &u, nil
}

func (r *SQLUMKMRepository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	d := r.client.Dialect()
	query := "UPDATE umkm SET gambar_url = " + d.Placeholder(1) + " WHERE id = " + d.Placeholder(2)

	res, err := r.client.GetDB().ExecContext(ctx, query, imageURL, id)
	if err != nil {
		return fmt.Errorf("failed to update image of umkm %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update image of umkm %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("umkm %d: %w", id, model.ErrUMKMNotFound)
	}
	return nil
}

func (r *SQLUMKMRepository) GetPasswordHash(ctx context.Context, id int64) (string, error) {
	query := "SELECT password_akses FROM umkm WHERE id = " + r.client.Dialect().Placeholder(1)

	var password sql.NullString
	if err := r.client.GetDB().QueryRowContext(ctx, query, id).Scan(&password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("umkm %d: %w", id, model.ErrUMKMNotFound)
		}
		return "", fmt.Errorf("failed to fetch password of umkm %d: %w", id, err)
	}
	return password.String, nil
}
