// Package policy holds the visibility and authorization rules for the
// application. Every predicate is a pure function over (actor, record);
// nothing here reads or writes state. All listing endpoints must filter
// through this package rather than exposing raw collections, so a record in
// a hidden state can never leak through a surface that forgot to check.
package policy

import "staffhub/internal/models"

// CanViewPost reports whether actor may see the post. Approved posts are
// visible to everyone; pending posts only to admins and their author.
func CanViewPost(actor *models.User, post *models.Post) bool {
	if post == nil {
		return false
	}
	if post.Approved {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == post.UserID
}

// CanViewTraining reports whether actor may see the training. Released
// trainings are visible to everyone; drafts only to admins and their creator.
func CanViewTraining(actor *models.User, training *models.Training) bool {
	if training == nil {
		return false
	}
	if training.Released {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == training.CreatedBy
}

// CanModeratePosts reports whether actor may approve or reject posts.
func CanModeratePosts(actor *models.User) bool {
	return actor.IsAdmin()
}

// CanManageTrainings reports whether actor may create, update, or release
// trainings and act on registrations.
func CanManageTrainings(actor *models.User) bool {
	return actor.IsAdmin()
}

// CanManageUsers reports whether actor may change other users' state.
func CanManageUsers(actor *models.User) bool {
	return actor.IsAdmin()
}

// CanRegister decides whether actor may create a registration for the
// training, given every existing registration for that training. It fails
// with AlreadyRegistered when the actor already holds a registration in any
// status, and with CapacityExceeded when the non-rejected registrations have
// filled the training's capacity. Approved and completed registrations keep
// their seats; rejected ones free them.
func CanRegister(actor *models.User, training *models.Training, existing []models.TrainingRegistration) error {
	occupied := 0
	for i := range existing {
		reg := &existing[i]
		if reg.TrainingID != training.ID {
			continue
		}
		if reg.UserID == actor.ID {
			return models.NewAlreadyRegisteredError()
		}
		if reg.CountsAgainstCapacity() {
			occupied++
		}
	}
	if occupied >= training.Capacity {
		return models.NewCapacityExceededError()
	}
	return nil
}

// VisiblePosts filters posts down to those actor may see, preserving order.
func VisiblePosts(actor *models.User, posts []models.Post) []models.Post {
	visible := make([]models.Post, 0, len(posts))
	for i := range posts {
		if CanViewPost(actor, &posts[i]) {
			visible = append(visible, posts[i])
		}
	}
	return visible
}

// VisibleTrainings filters trainings down to those actor may see, preserving
// order.
func VisibleTrainings(actor *models.User, trainings []models.Training) []models.Training {
	visible := make([]models.Training, 0, len(trainings))
	for i := range trainings {
		if CanViewTraining(actor, &trainings[i]) {
			visible = append(visible, trainings[i])
		}
	}
	return visible
}
