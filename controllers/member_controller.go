package controllers

import (
	"net/http"

	"library-management-system/app"
	"library-management-system/db"
	"library-management-system/models"

	"github.com/google/uuid"
)

type MemberController struct{ *Srv }

func NewMemberController(s *Srv) *MemberController { return &MemberController{Srv: s} }

func (mc *MemberController) ListMembers(c *app.Ctx) {
	members, err := mc.Repo.ListMembers(c.Request.Context(), c.Query("search"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"members": members})
}

func (mc *MemberController) GetMember(c *app.Ctx) {
	m, err := mc.Repo.FindMemberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"member": m})
}

func (mc *MemberController) AddMember(c *app.Ctx) {
	var in struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Name and a valid email are required"})
		return
	}

	m := &models.Member{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := mc.Repo.CreateMember(c.Request.Context(), m); err != nil {
		fail(c, err)
		return
	}
	mc.invalidateSnapshot(c)
	c.JSON(http.StatusCreated, app.H{"message": "Member added successfully", "member": m})
}

func (mc *MemberController) UpdateMember(c *app.Ctx) {
	var in struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Status  string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	m, err := mc.Repo.UpdateMember(c.Request.Context(), c.Param("id"), db.UpdateMemberInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Status:  in.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	mc.invalidateSnapshot(c)
	c.JSON(http.StatusOK, app.H{"message": "Member updated successfully", "member": m})
}

func (mc *MemberController) DeleteMember(c *app.Ctx) {
	if err := mc.Repo.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	mc.invalidateSnapshot(c)
	c.JSON(http.StatusOK, app.H{"message": "Member deleted successfully"})
}
