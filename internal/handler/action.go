package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
)

var (
	readMethods   = []string{http.MethodGet, http.MethodHead}
	addMethods    = []string{http.MethodPost}
	updateMethods = []string{http.MethodPost, http.MethodPut}
	deleteMethods = []string{http.MethodPost, http.MethodDelete}
)

// action is one ?action= value of a resource.
type action struct {
	methods []string
	handle  echo.HandlerFunc
	// handleOne replaces handle when an id is given.
	handleOne echo.HandlerFunc
	needsID   bool
	// required query params, reported together with requiredMsg.
	required    []string
	requiredMsg string
}

type actionResource struct {
	// label names the resource in "<label> ID is required".
	label   string
	usage   string
	actions map[string]action
}

// ActionHandler serves the query-string API used by the front-end:
//
//	GET  /api/skills?action=high_proficiency&profile_id=1&min=80
//	POST /api/skills_api.php?action=update&id=7
//
// Every action runs the same endpoint as its REST route.
type ActionHandler struct {
	Handler
	resources map[string]*actionResource
}

func NewActionHandler(
	s *server.Server,
	profile *ProfileHandler,
	skill *SkillHandler,
	project *ProjectHandler,
	education *EducationHandler,
	hobby *HobbyHandler,
	contact *ContactHandler,
) *ActionHandler {
	ok := http.StatusOK
	created := http.StatusCreated

	submit := action{methods: addMethods, handle: Handle(contact.Handler, contact.SubmitContact, created)}

	resources := map[string]*actionResource{
		"profile": {
			label: "Profile",
			usage: "read, add, update, delete, complete",
			actions: map[string]action{
				"read": {
					methods:   readMethods,
					handle:    Handle(profile.Handler, profile.ListProfiles, ok),
					handleOne: Handle(profile.Handler, profile.GetProfile, ok),
				},
				"complete": {methods: readMethods, handle: Handle(profile.Handler, profile.GetProfileSummary, ok), needsID: true},
				"add":      {methods: addMethods, handle: Handle(profile.Handler, profile.CreateProfile, created)},
				"update":   {methods: updateMethods, handle: Handle(profile.Handler, profile.UpdateProfile, ok), needsID: true},
				"delete":   {methods: deleteMethods, handle: Handle(profile.Handler, profile.DeleteProfile, ok), needsID: true},
			},
		},
		"skills": {
			label: "Skill",
			usage: "read, by_type, high_proficiency, add, update, delete",
			actions: map[string]action{
				"read": {
					methods:   readMethods,
					handle:    Handle(skill.Handler, skill.ListSkills, ok),
					handleOne: Handle(skill.Handler, skill.GetSkill, ok),
				},
				"by_type": {
					methods:     readMethods,
					handle:      Handle(skill.Handler, skill.SkillsByType, ok),
					required:    []string{"profile_id"},
					requiredMsg: "Profile ID is required",
				},
				"high_proficiency": {
					methods:     readMethods,
					handle:      Handle(skill.Handler, skill.TopSkills, ok),
					required:    []string{"profile_id"},
					requiredMsg: "Profile ID is required",
				},
				"add":    {methods: addMethods, handle: Handle(skill.Handler, skill.CreateSkill, created)},
				"update": {methods: updateMethods, handle: Handle(skill.Handler, skill.UpdateSkill, ok), needsID: true},
				"delete": {methods: deleteMethods, handle: Handle(skill.Handler, skill.DeleteSkill, ok), needsID: true},
			},
		},
		"projects": {
			label: "Project",
			usage: "read, search, add, update, delete",
			actions: map[string]action{
				"read": {
					methods:   readMethods,
					handle:    Handle(project.Handler, project.ListProjects, ok),
					handleOne: Handle(project.Handler, project.GetProject, ok),
				},
				"search": {
					methods:     readMethods,
					handle:      Handle(project.Handler, project.SearchProjects, ok),
					required:    []string{"profile_id", "tag"},
					requiredMsg: "Profile ID and tag are required for search",
				},
				"add":    {methods: addMethods, handle: Handle(project.Handler, project.CreateProject, created)},
				"update": {methods: updateMethods, handle: Handle(project.Handler, project.UpdateProject, ok), needsID: true},
				"delete": {methods: deleteMethods, handle: Handle(project.Handler, project.DeleteProject, ok), needsID: true},
			},
		},
		"education": {
			label: "Education",
			usage: "read, add, update, delete",
			actions: map[string]action{
				"read": {
					methods:   readMethods,
					handle:    Handle(education.Handler, education.ListEducation, ok),
					handleOne: Handle(education.Handler, education.GetEducation, ok),
				},
				"add":    {methods: addMethods, handle: Handle(education.Handler, education.CreateEducation, created)},
				"update": {methods: updateMethods, handle: Handle(education.Handler, education.UpdateEducation, ok), needsID: true},
				"delete": {methods: deleteMethods, handle: Handle(education.Handler, education.DeleteEducation, ok), needsID: true},
			},
		},
		"hobbies": {
			label: "Hobby",
			usage: "read, add, update, delete",
			actions: map[string]action{
				"read": {
					methods:   readMethods,
					handle:    Handle(hobby.Handler, hobby.ListHobbies, ok),
					handleOne: Handle(hobby.Handler, hobby.GetHobby, ok),
				},
				"add":    {methods: addMethods, handle: Handle(hobby.Handler, hobby.CreateHobby, created)},
				"update": {methods: updateMethods, handle: Handle(hobby.Handler, hobby.UpdateHobby, ok), needsID: true},
				"delete": {methods: deleteMethods, handle: Handle(hobby.Handler, hobby.DeleteHobby, ok), needsID: true},
			},
		},
		"contacts": {
			label: "Contact",
			usage: "read, stats, add, submit, update_status, delete",
			actions: map[string]action{
				"read": {
					methods:   readMethods,
					handle:    Handle(contact.Handler, contact.ListContacts, ok),
					handleOne: Handle(contact.Handler, contact.GetContact, ok),
				},
				"stats":         {methods: readMethods, handle: Handle(contact.Handler, contact.ContactStats, ok)},
				"add":           submit,
				"submit":        submit,
				"update_status": {methods: updateMethods, handle: Handle(contact.Handler, contact.UpdateContactStatus, ok), needsID: true},
				"delete":        {methods: deleteMethods, handle: Handle(contact.Handler, contact.DeleteContact, ok), needsID: true},
			},
		},
	}

	// Singular names are accepted too: /api/skill, /api/hobby_api.php.
	resources["profiles"] = resources["profile"]
	resources["skill"] = resources["skills"]
	resources["project"] = resources["projects"]
	resources["hobby"] = resources["hobbies"]
	resources["contact"] = resources["contacts"]

	return &ActionHandler{
		Handler:   NewHandler(s),
		resources: resources,
	}
}

// resourceName strips the "_api.php" decoration of the legacy endpoint names.
func resourceName(raw string) string {
	name := strings.ToLower(raw)
	name = strings.TrimSuffix(name, ".php")
	name = strings.TrimSuffix(name, "_api")
	return name
}

// present reports whether a query value is set. Blank and 0 count as unset,
// as they did for the legacy endpoints.
func present(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw != "" && raw != "0"
}

// Dispatch routes ANY /api/:resource to the endpoint named by ?action=.
// The action defaults to read. ?id= is exposed to the endpoint as the :id
// path param, so payloads bind it exactly like on the REST routes.
func (h *ActionHandler) Dispatch(c echo.Context) error {
	raw := c.Param("resource")
	res, ok := h.resources[resourceName(raw)]
	if !ok {
		return errs.NewNotFoundError("Route not found", true, nil)
	}

	name := c.QueryParam("action")
	if name == "" {
		name = "read"
	}

	act, ok := res.actions[name]
	if !ok {
		return errs.NewBadRequestError("Invalid action. Use: "+res.usage, true, nil, nil)
	}

	if !slices.Contains(act.methods, c.Request().Method) {
		return errs.NewMethodNotAllowedError("Invalid request method")
	}

	for _, param := range act.required {
		if !present(c.QueryParam(param)) {
			return errs.NewBadRequestError(act.requiredMsg, true, nil, nil)
		}
	}

	handle := act.handle
	id := c.QueryParam("id")
	switch {
	case present(id):
		c.SetParamNames("resource", "id")
		c.SetParamValues(raw, id)
		if act.handleOne != nil {
			handle = act.handleOne
		}
	case act.needsID:
		return errs.NewBadRequestError(res.label+" ID is required", true, nil, nil)
	}

	return handle(c)
}
