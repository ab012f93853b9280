package types

import (
	"time"

	"github.com/synergysphere-dev/synergysphere/internal/models"
)

// Canonical JSON representations of the stored entities. UserSimpleResponse
// deliberately omits project ids: a project embeds its members and a user
// embeds its project ids, so the simple form breaks the mutual recursion.

type UserSimpleResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Projects []uint `json:"projects"`
}

type TaskResponse struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	IsDone  bool   `json:"is_done"`
}

type MessageResponse struct {
	ID        uint               `json:"id"`
	Content   string             `json:"content"`
	Timestamp string             `json:"timestamp"`
	User      UserSimpleResponse `json:"user"`
	ProjectID uint               `json:"project_id"`
	ParentID  *uint              `json:"parent_id"`
	Replies   []MessageResponse  `json:"replies"`
}

type NotificationResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	IsRead    bool   `json:"is_read"`
	Timestamp string `json:"timestamp"`
	Link      string `json:"link"`
}

type ProjectResponse struct {
	ID       uint                 `json:"id"`
	Name     string               `json:"name"`
	Tasks    []TaskResponse       `json:"tasks"`
	Members  []UserSimpleResponse `json:"members"`
	Messages []MessageResponse    `json:"messages"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func NewUserSimpleResponse(user models.User) UserSimpleResponse {
	return UserSimpleResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

// NewUserResponse expects user.ProjectMemberships to be preloaded.
func NewUserResponse(user models.User) UserResponse {
	projects := make([]uint, 0, len(user.ProjectMemberships))

	for _, membership := range user.ProjectMemberships {
		projects = append(projects, membership.ProjectID)
	}

	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Projects: projects,
	}
}

func NewTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:      task.ID,
		Content: task.Content,
		IsDone:  task.IsDone,
	}
}

func NewNotificationResponse(notification models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Content:   notification.Content,
		IsRead:    notification.IsRead,
		Timestamp: formatTimestamp(notification.Timestamp),
		Link:      notification.Link,
	}
}

// BuildMessageTree turns a flat, id-ordered slice of a project's messages
// (authors preloaded) into the nested thread representation. The tree is
// assembled from an index keyed by parent id rather than embedded child
// pointers, and recursion is bounded only by the actual thread depth.
func BuildMessageTree(messages []models.Message) []MessageResponse {
	byParent := make(map[uint][]models.Message)
	roots := make([]models.Message, 0, len(messages))

	for _, message := range messages {
		if message.ParentID == nil {
			roots = append(roots, message)
		} else {
			byParent[*message.ParentID] = append(byParent[*message.ParentID], message)
		}
	}

	var build func(message models.Message) MessageResponse

	build = func(message models.Message) MessageResponse {
		children := byParent[message.ID]
		replies := make([]MessageResponse, 0, len(children))

		for _, child := range children {
			replies = append(replies, build(child))
		}

		return MessageResponse{
			ID:        message.ID,
			Content:   message.Content,
			Timestamp: formatTimestamp(message.Timestamp),
			User:      NewUserSimpleResponse(message.Author),
			ProjectID: message.ProjectID,
			ParentID:  message.ParentID,
			Replies:   replies,
		}
	}

	tree := make([]MessageResponse, 0, len(roots))

	for _, root := range roots {
		tree = append(tree, build(root))
	}

	return tree
}

// NewMessageResponse renders a single message with the replies it already
// carries loaded one level deep. Used for freshly created messages, which
// never have replies yet.
func NewMessageResponse(message models.Message) MessageResponse {
	replies := make([]MessageResponse, 0, len(message.Replies))

	for _, reply := range message.Replies {
		replies = append(replies, NewMessageResponse(reply))
	}

	return MessageResponse{
		ID:        message.ID,
		Content:   message.Content,
		Timestamp: formatTimestamp(message.Timestamp),
		User:      NewUserSimpleResponse(message.Author),
		ProjectID: message.ProjectID,
		ParentID:  message.ParentID,
		Replies:   replies,
	}
}

// NewProjectResponse expects Tasks, ProjectMemberships.User and
// Messages.Author to be preloaded.
func NewProjectResponse(project models.Project) ProjectResponse {
	tasks := make([]TaskResponse, 0, len(project.Tasks))

	for _, task := range project.Tasks {
		tasks = append(tasks, NewTaskResponse(task))
	}

	members := make([]UserSimpleResponse, 0, len(project.ProjectMemberships))

	for _, membership := range project.ProjectMemberships {
		members = append(members, NewUserSimpleResponse(membership.User))
	}

	return ProjectResponse{
		ID:       project.ID,
		Name:     project.Name,
		Tasks:    tasks,
		Members:  members,
		Messages: BuildMessageTree(project.Messages),
	}
}
