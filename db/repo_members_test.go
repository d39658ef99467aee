package db_test

import (
	"context"
	"testing"

	"library-management-system/db"
	"library-management-system/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateMember_Defaults(t *testing.T) {
	r, _ := newTestRepo(t)

	m := &models.Member{
		ID:    uuid.NewString(),
		Name:  "New Member",
		Email: uuid.NewString() + "@example.com",
	}
	require.NoError(t, r.CreateMember(context.Background(), m))
	assert.Equal(t, models.MemberActive, m.Status)
	assert.False(t, m.MembershipDate.IsZero())
}

func Test_CreateMember_DuplicateEmail(t *testing.T) {
	r, _ := newTestRepo(t)

	m := createMember(t, r, "First")
	dup := &models.Member{ID: uuid.NewString(), Name: "Second", Email: m.Email}
	err := r.CreateMember(context.Background(), dup)
	assert.ErrorIs(t, err, db.ErrEmailExists)
}

func Test_UpdateMember_StatusAndFields(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	m := createMember(t, r, "Renamed")
	updated, err := r.UpdateMember(ctx, m.ID, db.UpdateMemberInput{
		Name:    "Renamed Properly",
		Email:   m.Email,
		Phone:   "555-0199",
		Address: "1 New Road",
		Status:  models.MemberInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Properly", updated.Name)
	assert.Equal(t, models.MemberInactive, updated.Status)

	// unknown status values are ignored, not written
	updated, err = r.UpdateMember(ctx, m.ID, db.UpdateMemberInput{
		Name:   updated.Name,
		Email:  updated.Email,
		Status: "banned",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MemberInactive, updated.Status)
}

func Test_DeleteMember_BlockedByOpenLoan(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	book := createBook(t, r, "Held Book", 1)
	m := createMember(t, r, "Holder")
	loan, err := r.BorrowBook(ctx, book.ID, m.ID, 14)
	require.NoError(t, err)

	err = r.DeleteMember(ctx, m.ID)
	assert.ErrorIs(t, err, db.ErrMemberHasOpenLoans)

	_, err = r.ReturnBook(ctx, loan.ID)
	require.NoError(t, err)
	require.NoError(t, r.DeleteMember(ctx, m.ID))

	_, err = r.FindMemberByID(ctx, m.ID)
	assert.ErrorIs(t, err, db.ErrMemberNotFound)
}

func Test_ListMembers_Filters(t *testing.T) {
	r, g := newTestRepo(t)
	ctx := context.Background()

	alice := createMember(t, r, "Alice Walker")
	createMember(t, r, "Bob Stone")
	require.NoError(t, g.Model(&models.Member{}).
		Where("id = ?", alice.ID).
		Update("status", models.MemberInactive).Error)

	byName, err := r.ListMembers(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, alice.ID, byName[0].ID)

	inactive, err := r.ListMembers(ctx, "", models.MemberInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, alice.ID, inactive[0].ID)
}
