package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saberviver/mentorship-api/internal/core/ports"
)

// MentorHandler serves the mentor directory pages.
type MentorHandler struct {
	directory ports.DirectoryService
}

func NewMentorHandler(directory ports.DirectoryService) *MentorHandler {
	return &MentorHandler{directory: directory}
}

// List handles GET /v1/mentors with optional search and skill filters.
//
// @Summary      List mentors
// @Tags         mentors
// @Produce      json
// @Param        search  query     string  false  "Substring match on mentor name or class title"
// @Param        skill   query     string  false  "Exact skill name; empty matches all"
// @Success      200     {array}   domain.Mentor
// @Router       /v1/mentors [get]
func (h *MentorHandler) List(c echo.Context) error {
	mentors, err := h.directory.ListMentors(c.Request().Context(), ports.MentorFilter{
		Search: c.QueryParam("search"),
		Skill:  c.QueryParam("skill"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mentors)
}

// Get handles GET /v1/mentors/:id — the mentor profile page.
//
// @Summary      Get a mentor by id
// @Tags         mentors
// @Produce      json
// @Param        id   path      string  true  "Mentor id"
// @Success      200  {object}  domain.Mentor
// @Failure      404  {object}  map[string]string
// @Router       /v1/mentors/{id} [get]
func (h *MentorHandler) Get(c echo.Context) error {
	mentor, err := h.directory.GetMentor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mentor)
}

// GetClass handles GET /v1/mentors/:id/classes/:class_id.
//
// @Summary      Get a mentor's class
// @Tags         mentors
// @Produce      json
// @Param        id        path      string  true  "Mentor id"
// @Param        class_id  path      string  true  "Class id"
// @Success      200       {object}  domain.MentorClass
// @Failure      404       {object}  map[string]string
// @Router       /v1/mentors/{id}/classes/{class_id} [get]
func (h *MentorHandler) GetClass(c echo.Context) error {
	class, err := h.directory.GetClass(c.Request().Context(), c.Param("id"), c.Param("class_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

// Skills handles GET /v1/skills — the filter dropdown data.
//
// @Summary      List skills
// @Tags         mentors
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /v1/skills [get]
func (h *MentorHandler) Skills(c echo.Context) error {
	skills, err := h.directory.ListSkills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// MyClasses handles GET /v1/mentors/me/classes — the classes a logged-in
// catalog mentor offers. Mentor role only.
//
// @Summary      List the current mentor's classes
// @Tags         mentors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.MentorClass
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/mentors/me/classes [get]
func (h *MentorHandler) MyClasses(c echo.Context) error {
	_, user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	classes, err := h.directory.ClassesByMentorEmail(c.Request().Context(), user.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}
