package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub/internal/models"
)

func user(id string) *models.User {
	return &models.User{ID: id, Role: models.RoleUser, Active: true}
}

func admin(id string) *models.User {
	return &models.User{ID: id, Role: models.RoleAdmin, Active: true}
}

func TestCanViewPost(t *testing.T) {
	t.Parallel()
	author := user("author")
	other := user("other")
	mod := admin("mod")

	approved := &models.Post{ID: "p1", UserID: author.ID, Approved: true}
	pending := &models.Post{ID: "p2", UserID: author.ID, Approved: false}

	tests := []struct {
		name  string
		actor *models.User
		post  *models.Post
		want  bool
	}{
		{"Approved Visible To Anyone", other, approved, true},
		{"Approved Visible To Author", author, approved, true},
		{"Pending Hidden From Others", other, pending, false},
		{"Pending Visible To Author", author, pending, true},
		{"Pending Visible To Admin", mod, pending, true},
		{"Nil Post", other, nil, false},
		{"Nil Actor Pending", nil, pending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewPost(tt.actor, tt.post))
		})
	}
}

func TestCanViewTraining(t *testing.T) {
	t.Parallel()
	creator := admin("creator")
	other := user("other")
	mod := admin("mod")

	released := &models.Training{ID: "t1", CreatedBy: creator.ID, Released: true}
	draft := &models.Training{ID: "t2", CreatedBy: creator.ID, Released: false}

	assert.True(t, CanViewTraining(other, released))
	assert.False(t, CanViewTraining(other, draft))
	assert.True(t, CanViewTraining(creator, draft))
	assert.True(t, CanViewTraining(mod, draft))
	assert.False(t, CanViewTraining(other, nil))
}

func TestAdminPredicates(t *testing.T) {
	t.Parallel()
	assert.True(t, CanModeratePosts(admin("a")))
	assert.False(t, CanModeratePosts(user("u")))
	assert.True(t, CanManageTrainings(admin("a")))
	assert.False(t, CanManageTrainings(user("u")))
	assert.True(t, CanManageUsers(admin("a")))
	assert.False(t, CanManageUsers(user("u")))
}

func TestCanRegister(t *testing.T) {
	t.Parallel()
	training := &models.Training{ID: "t1", Capacity: 2, Released: true}

	reg := func(id, userID, status string) models.TrainingRegistration {
		return models.TrainingRegistration{ID: id, TrainingID: "t1", UserID: userID, Status: status}
	}

	t.Run("Empty Training", func(t *testing.T) {
		assert.NoError(t, CanRegister(user("u1"), training, nil))
	})

	t.Run("Duplicate Any Status", func(t *testing.T) {
		for _, status := range []string{
			models.RegistrationPending,
			models.RegistrationApproved,
			models.RegistrationRejected,
			models.RegistrationCompleted,
		} {
			err := CanRegister(user("u1"), training, []models.TrainingRegistration{reg("r1", "u1", status)})
			require.Error(t, err, status)
			assert.True(t, models.IsCode(err, models.CodeAlreadyRegistered), status)
		}
	})

	t.Run("Pending And Approved Hold Seats", func(t *testing.T) {
		existing := []models.TrainingRegistration{
			reg("r1", "u1", models.RegistrationPending),
			reg("r2", "u2", models.RegistrationApproved),
		}
		err := CanRegister(user("u3"), training, existing)
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeCapacityExceeded))
	})

	t.Run("Rejected Frees Seat", func(t *testing.T) {
		existing := []models.TrainingRegistration{
			reg("r1", "u1", models.RegistrationApproved),
			reg("r2", "u2", models.RegistrationRejected),
		}
		assert.NoError(t, CanRegister(user("u3"), training, existing))
	})

	t.Run("Completed Holds Seat", func(t *testing.T) {
		existing := []models.TrainingRegistration{
			reg("r1", "u1", models.RegistrationCompleted),
			reg("r2", "u2", models.RegistrationPending),
		}
		err := CanRegister(user("u3"), training, existing)
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeCapacityExceeded))
	})

	t.Run("Other Training Ignored", func(t *testing.T) {
		existing := []models.TrainingRegistration{
			{ID: "r1", TrainingID: "t2", UserID: "u1", Status: models.RegistrationApproved},
			{ID: "r2", TrainingID: "t2", UserID: "u3", Status: models.RegistrationApproved},
		}
		assert.NoError(t, CanRegister(user("u3"), training, existing))
	})
}

func TestVisiblePosts(t *testing.T) {
	t.Parallel()
	author := user("author")
	posts := []models.Post{
		{ID: "p1", UserID: "someone", Approved: true},
		{ID: "p2", UserID: author.ID, Approved: false},
		{ID: "p3", UserID: "someone", Approved: false},
	}

	visible := VisiblePosts(author, posts)
	require.Len(t, visible, 2)
	assert.Equal(t, "p1", visible[0].ID)
	assert.Equal(t, "p2", visible[1].ID)

	all := VisiblePosts(admin("mod"), posts)
	assert.Len(t, all, 3)
}

func TestVisibleTrainings(t *testing.T) {
	t.Parallel()
	trainings := []models.Training{
		{ID: "t1", Released: true, CreatedBy: "admin1"},
		{ID: "t2", Released: false, CreatedBy: "admin1"},
	}

	visible := VisibleTrainings(user("u1"), trainings)
	require.Len(t, visible, 1)
	assert.Equal(t, "t1", visible[0].ID)

	assert.Len(t, VisibleTrainings(admin("admin2"), trainings), 2)
}
