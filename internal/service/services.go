package service

import (
	"github.com/deppfellow/portfolio-backend/internal/lib/job"
	"github.com/deppfellow/portfolio-backend/internal/repository"
	"github.com/deppfellow/portfolio-backend/internal/server"
)

type Services struct {
	Profile   *ProfileService
	Skill     *SkillService
	Project   *ProjectService
	Education *EducationService
	Hobby     *HobbyService
	Contact   *ContactService
	Job       *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A typed nil *asynq.Client must not end up inside the interface.
	var tasks TaskEnqueuer
	notifyTo := ""
	if s.Job != nil && s.Config.Integration.NotificationsEnabled() {
		tasks = s.Job.Client
		notifyTo = s.Config.Integration.ContactNotifyTo
	}

	return &Services{
		Profile:   NewProfileService(repos.Profile),
		Skill:     NewSkillService(repos.Skill),
		Project:   NewProjectService(repos.Project),
		Education: NewEducationService(repos.Education),
		Hobby:     NewHobbyService(repos.Hobby),
		Contact:   NewContactService(repos.Contact, tasks, notifyTo),
		Job:       s.Job,
	}, nil
}
