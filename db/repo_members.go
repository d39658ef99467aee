package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"library-management-system/models"

	"gorm.io/gorm"
)

// Members

func (r *Repo) CreateMember(ctx context.Context, m *models.Member) error {
	if m.Status == "" {
		m.Status = models.MemberActive
	}
	if m.MembershipDate.IsZero() {
		m.MembershipDate = time.Now().UTC()
	}
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, ErrEmailExists)
	}
	return nil
}

func (r *Repo) FindMemberByID(ctx context.Context, id string) (*models.Member, error) {
	var m models.Member
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repo) ListMembers(ctx context.Context, search, status string) ([]models.Member, error) {
	q := r.DB.WithContext(ctx).Model(&models.Member{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var members []models.Member
	err := q.Order("created_at DESC").Find(&members).Error
	return members, err
}

type UpdateMemberInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Status  string
}

func (r *Repo) UpdateMember(ctx context.Context, id string, in UpdateMemberInput) (*models.Member, error) {
	updates := map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"address": in.Address,
	}
	if in.Status == models.MemberActive || in.Status == models.MemberInactive {
		updates["status"] = in.Status
	}
	res := r.DB.WithContext(ctx).Model(&models.Member{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, translateError(res.Error, ErrEmailExists)
	}
	if res.RowsAffected == 0 {
		return nil, ErrMemberNotFound
	}
	return r.FindMemberByID(ctx, id)
}

func (r *Repo) DeleteMember(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&models.Transaction{}).
			Where("member_id = ? AND status = ?", id, models.StatusBorrowed).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrMemberHasOpenLoans
		}
		res := tx.Delete(&models.Member{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrMemberNotFound
		}
		return nil
	})
}
