package router

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerV1Routes(v1 *echo.Group, h *handler.Handlers) {
	registerProfileRoutes(v1, h.Profile)
	registerSkillRoutes(v1, h.Skill)
	registerProjectRoutes(v1, h.Project)
	registerEducationRoutes(v1, h.Education)
	registerHobbyRoutes(v1, h.Hobby)
	registerContactRoutes(v1, h.Contact)
}

func registerProfileRoutes(v1 *echo.Group, h *handler.ProfileHandler) {
	profiles := v1.Group("/profiles")
	profiles.GET("", handler.Handle(h.Handler, h.ListProfiles, http.StatusOK))
	profiles.POST("", handler.Handle(h.Handler, h.CreateProfile, http.StatusCreated))
	profiles.GET("/:id", handler.Handle(h.Handler, h.GetProfile, http.StatusOK))
	profiles.PUT("/:id", handler.Handle(h.Handler, h.UpdateProfile, http.StatusOK))
	profiles.DELETE("/:id", handler.Handle(h.Handler, h.DeleteProfile, http.StatusOK))
	profiles.GET("/:id/summary", handler.Handle(h.Handler, h.GetProfileSummary, http.StatusOK))
}

func registerSkillRoutes(v1 *echo.Group, h *handler.SkillHandler) {
	skills := v1.Group("/skills")
	skills.GET("", handler.Handle(h.Handler, h.ListSkills, http.StatusOK))
	skills.POST("", handler.Handle(h.Handler, h.CreateSkill, http.StatusCreated))
	// Static segments win over /:id in Echo's router.
	skills.GET("/by-type", handler.Handle(h.Handler, h.SkillsByType, http.StatusOK))
	skills.GET("/top", handler.Handle(h.Handler, h.TopSkills, http.StatusOK))
	skills.GET("/:id", handler.Handle(h.Handler, h.GetSkill, http.StatusOK))
	skills.PUT("/:id", handler.Handle(h.Handler, h.UpdateSkill, http.StatusOK))
	skills.DELETE("/:id", handler.Handle(h.Handler, h.DeleteSkill, http.StatusOK))
}

func registerProjectRoutes(v1 *echo.Group, h *handler.ProjectHandler) {
	projects := v1.Group("/projects")
	projects.GET("", handler.Handle(h.Handler, h.ListProjects, http.StatusOK))
	projects.POST("", handler.Handle(h.Handler, h.CreateProject, http.StatusCreated))
	projects.GET("/search", handler.Handle(h.Handler, h.SearchProjects, http.StatusOK))
	projects.GET("/:id", handler.Handle(h.Handler, h.GetProject, http.StatusOK))
	projects.PUT("/:id", handler.Handle(h.Handler, h.UpdateProject, http.StatusOK))
	projects.DELETE("/:id", handler.Handle(h.Handler, h.DeleteProject, http.StatusOK))
}

func registerEducationRoutes(v1 *echo.Group, h *handler.EducationHandler) {
	education := v1.Group("/education")
	education.GET("", handler.Handle(h.Handler, h.ListEducation, http.StatusOK))
	education.POST("", handler.Handle(h.Handler, h.CreateEducation, http.StatusCreated))
	education.GET("/:id", handler.Handle(h.Handler, h.GetEducation, http.StatusOK))
	education.PUT("/:id", handler.Handle(h.Handler, h.UpdateEducation, http.StatusOK))
	education.DELETE("/:id", handler.Handle(h.Handler, h.DeleteEducation, http.StatusOK))
}

func registerHobbyRoutes(v1 *echo.Group, h *handler.HobbyHandler) {
	hobbies := v1.Group("/hobbies")
	hobbies.GET("", handler.Handle(h.Handler, h.ListHobbies, http.StatusOK))
	hobbies.POST("", handler.Handle(h.Handler, h.CreateHobby, http.StatusCreated))
	hobbies.GET("/:id", handler.Handle(h.Handler, h.GetHobby, http.StatusOK))
	hobbies.PUT("/:id", handler.Handle(h.Handler, h.UpdateHobby, http.StatusOK))
	hobbies.DELETE("/:id", handler.Handle(h.Handler, h.DeleteHobby, http.StatusOK))
}

func registerContactRoutes(v1 *echo.Group, h *handler.ContactHandler) {
	contacts := v1.Group("/contacts")
	contacts.GET("", handler.Handle(h.Handler, h.ListContacts, http.StatusOK))
	contacts.POST("", handler.Handle(h.Handler, h.SubmitContact, http.StatusCreated))
	contacts.GET("/stats", handler.Handle(h.Handler, h.ContactStats, http.StatusOK))
	contacts.GET("/:id", handler.Handle(h.Handler, h.GetContact, http.StatusOK))
	contacts.PATCH("/:id/status", handler.Handle(h.Handler, h.UpdateContactStatus, http.StatusOK))
	contacts.DELETE("/:id", handler.Handle(h.Handler, h.DeleteContact, http.StatusOK))
}
