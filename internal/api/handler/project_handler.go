package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skipper-116/devhub-backend/internal/api/metrics"
	"github.com/Skipper-116/devhub-backend/internal/core/domain"
	"github.com/Skipper-116/devhub-backend/internal/core/ports"
)

// ProjectHandler covers project CRUD, likes and comments.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"techStack" validate:"required,min=1"`
	GithubLink  string   `json:"githubLink" validate:"required"`
	DemoLink    string   `json:"demoLink"`
	Screenshots []string `json:"screenshots"`
	Category    string   `json:"category" validate:"required"`
}

type updateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubLink  string   `json:"githubLink"`
	DemoLink    string   `json:"demoLink"`
	Screenshots []string `json:"screenshots"`
	Category    string   `json:"category"`
}

type deleteProjectRequest struct {
	Reason string `json:"reason"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type removeCommentRequest struct {
	CommentID string `json:"commentId" validate:"required"`
	Reason    string `json:"reason"`
}

// projectResponse is the public project view. Counts include voided comment
// references, matching the append-only comment list.
type projectResponse struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TechStack     []string  `json:"techStack"`
	GithubLink    string    `json:"githubLink"`
	DemoLink      string    `json:"demoLink,omitempty"`
	Screenshots   []string  `json:"screenshots"`
	Category      string    `json:"category"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
}

type commentResponse struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		TechStack:     p.TechStack,
		GithubLink:    p.GithubLink,
		DemoLink:      p.DemoLink,
		Screenshots:   p.Screenshots,
		Category:      p.Category,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		LikesCount:    len(p.Likes),
		CommentsCount: len(p.Comments),
	}
}

// Create handles POST /api/v1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), actorID, ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GithubLink:  req.GithubLink,
		DemoLink:    req.DemoLink,
		Screenshots: req.Screenshots,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Project created successfully",
		"project": toProjectResponse(project),
	})
}

// List handles GET /api/v1/projects?page=&limit=.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (0-based)"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	projects := make([]projectResponse, 0, len(result.Projects))
	for i := range result.Projects {
		projects = append(projects, toProjectResponse(&result.Projects[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"projects": projects,
		"count":    result.Count,
	})
}

// Get handles GET /api/v1/projects/:id. A voided project is
// indistinguishable from an absent one.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"project": toProjectResponse(project)})
}

// Update handles PUT /api/v1/projects/:id. Owner only.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), ports.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GithubLink:  req.GithubLink,
		DemoLink:    req.DemoLink,
		Screenshots: req.Screenshots,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Project updated successfully",
		"project": toProjectResponse(project),
	})
}

// Delete handles DELETE /api/v1/projects/:id: the soft-delete transition,
// permitted to the owner or an admin. Reason is required.
//
// @Summary      Delete a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      deleteProjectRequest  true  "Reason"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	var req deleteProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Reason == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide a reason for deleting the project")
	}

	if err := h.service.Void(c.Request().Context(), actorID, c.Param("id"), req.Reason); err != nil {
		return err
	}

	metrics.EntitiesVoidedTotal.WithLabelValues("project").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// Like handles PUT /api/v1/projects/:id/like: an idempotent toggle.
//
// @Summary      Toggle a like on a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/like [put]
func (h *ProjectHandler) Like(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	result, err := h.service.ToggleLike(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}

	message := "Project liked successfully"
	if result.Liked {
		metrics.LikeTogglesTotal.WithLabelValues("liked").Inc()
	} else {
		message = "Project unliked successfully"
		metrics.LikeTogglesTotal.WithLabelValues("unliked").Inc()
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": message,
		"likes":   result.Likes,
	})
}

// AddComment handles POST /api/v1/projects/:id/comment.
//
// @Summary      Comment on a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Project id"
// @Param        body  body      addCommentRequest  true  "Comment content"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id}/comment [post]
func (h *ProjectHandler) AddComment(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	count, err := h.service.AddComment(c.Request().Context(), actorID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "Comment added successfully",
		"comments": count,
	})
}

// Comments handles GET /api/v1/projects/:id/comment. Voided comments are
// filtered out even while their ids remain referenced by the project.
//
// @Summary      List a project's comments
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/comment [get]
func (h *ProjectHandler) Comments(c echo.Context) error {
	comments, err := h.service.Comments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	out := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, commentResponse{
			ID:        cm.ID,
			Content:   cm.Content,
			CreatedBy: cm.CreatedBy,
			CreatedAt: cm.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"comments": out})
}

// RemoveComment handles DELETE /api/v1/projects/:id/comment: voids the
// comment, permitted to its author or an admin.
//
// @Summary      Remove a comment from a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      removeCommentRequest  true  "Comment id and reason"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id}/comment [delete]
func (h *ProjectHandler) RemoveComment(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	var req removeCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Reason == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide a reason for removing the comment")
	}

	if err := h.service.RemoveComment(c.Request().Context(), actorID, c.Param("id"), req.CommentID, req.Reason); err != nil {
		return err
	}

	metrics.EntitiesVoidedTotal.WithLabelValues("comment").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Comment removed successfully"})
}
