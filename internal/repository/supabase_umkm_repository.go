package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/helper"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
)

const umkmTable = "umkm"

type SupabaseUMKMRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseUMKMRepository(client *database.SupabaseClient) repository.UMKMRepository {
	return &SupabaseUMKMRepository{
		client: client,
	}
}

func (r *SupabaseUMKMRepository) Find(ctx context.Context, filter model.UMKMFilter) ([]model.UMKM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.client.GetClient().From(umkmTable).Select(model.UMKMColumns, "", false)
	if filter.HasCategory() {
		query = query.Eq("jenis", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Or(searchFilter(search), "")
	}

	data, _, err := query.Order("id", &postgrest.OrderOpts{Ascending: true}).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch umkm: %w", err)
	}

	items, err := decodeUMKMRows(data)
	if err != nil {
		return nil, err
	}
	if strings.ContainsRune(filter.Search, '*') {
		items = helper.Search(items, filter.Search)
	}
	return items, nil
}

func (r *SupabaseUMKMRepository) GetByID(ctx context.Context, id int64) (*model.UMKM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, _, err := r.client.GetClient().From(umkmTable).
		Select(model.UMKMColumns, "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch umkm %d: %w", id, err)
	}

	return firstUMKM(data, id)
}

func (r *SupabaseUMKMRepository) Create(ctx context.Context, row *model.UMKMRow) (*model.UMKM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	insert := *row
	insert.ID = 0
	data, _, err := r.client.GetClient().From(umkmTable).
		Insert(&insert, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create umkm: %w", err)
	}

	return firstUMKM(data, 0)
}

func (r *SupabaseUMKMRepository) Update(ctx context.Context, id int64, row *model.UMKMRow) (*model.UMKM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, _, err := r.client.GetClient().From(umkmTable).
		Update(row.Changes(), "representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update umkm %d: %w", id, err)
	}

	return firstUMKM(data, id)
}

func (r *SupabaseUMKMRepository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, _, err := r.client.GetClient().From(umkmTable).
		Update(map[string]any{"gambar_url": imageURL}, "representation", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update image of umkm %d: %w", id, err)
	}

	_, err = firstUMKM(data, id)
	return err
}

func (r *SupabaseUMKMRepository) GetPasswordHash(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, _, err := r.client.GetClient().From(umkmTable).
		Select("id,password_akses", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return "", fmt.Errorf("failed to fetch password of umkm %d: %w", id, err)
	}

	var rows []struct {
		PasswordAkses *string `json:"password_akses"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", fmt.Errorf("failed to decode umkm: %w", err)
	}
	if len(rows) == 0 {
		return "", model.ErrUMKMNotFound
	}
	if rows[0].PasswordAkses == nil {
		return "", nil
	}
	return *rows[0].PasswordAkses, nil
}

// postgrestLikeEscaper escapes ILIKE wildcards. PostgREST turns every * into %,
// so * becomes a single-character wildcard and Find narrows the rows afterwards.
var postgrestLikeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`, `*`, `_`)

// searchFilter builds the PostgREST or=() body matching name or address
func searchFilter(search string) string {
	term := postgrestLikeEscaper.Replace(search)
	term = strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(term)
	return fmt.Sprintf(`nama_perusahaan.ilike."*%s*",alamat.ilike."*%s*"`, term, term)
}

func decodeUMKMRows(data []byte) ([]model.UMKM, error) {
	var rows []model.UMKMRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode umkm: %w", err)
	}

	result := make([]model.UMKM, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToUMKM())
	}
	return result, nil
}

func firstUMKM(data []byte, id int64) (*model.UMKM, error) {
	items, err := decodeUMKMRows(data)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		if id != 0 {
			return nil, fmt.Errorf("umkm %d: %w", id, model.ErrUMKMNotFound)
		}
		return nil, model.ErrUMKMNotFound
	}
	return &items[0], nil
}
