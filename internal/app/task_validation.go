package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/task"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// newTaskFields holds the normalized values of a valid create request.
type newTaskFields struct {
	title       string
	description string
	deadline    *time.Time
	priority    task.Priority
}

// validateCreate checks every field of a create request against now and
// returns the normalized values.
func validateCreate(in ports.CreateTaskInput, now time.Time) (newTaskFields, error) {
	fields := make(map[string]string)
	out := newTaskFields{priority: task.DefaultPriority}

	if in.Title == "" {
		fields["title"] = domain.MsgRequired
	} else if msg := task.CheckTitle(in.Title); msg != "" {
		fields["title"] = msg
	} else {
		out.title = strings.TrimSpace(in.Title)
	}

	if in.OwnerID == "" {
		fields["owner_id"] = domain.MsgRequired
	}

	if in.Description != nil {
		if msg := task.CheckDescription(*in.Description); msg != "" {
			fields["description"] = msg
		} else {
			out.description = strings.TrimSpace(*in.Description)
		}
	}

	if in.Deadline != nil {
		if d, msg := task.ParseDeadline(*in.Deadline, now); msg != "" {
			fields["deadline"] = msg
		} else {
			out.deadline = &d
		}
	}

	if in.Priority != nil {
		if p := task.Priority(*in.Priority); p.IsValid() {
			out.priority = p
		} else {
			fields["priority"] = fmt.Sprintf("invalid: %q", *in.Priority)
		}
	}

	if err := domain.FieldErrors(fields); err != nil {
		return newTaskFields{}, err
	}
	return out, nil
}

// validateUpdate checks the fields present in an update request and returns
// the normalized patch.
func validateUpdate(in ports.UpdateTaskInput, now time.Time) (task.Patch, error) {
	fields := make(map[string]string)
	var patch task.Patch

	if in.Title != nil {
		if msg := task.CheckTitle(*in.Title); msg != "" {
			fields["title"] = msg
		} else {
			title := strings.TrimSpace(*in.Title)
			patch.Title = &title
		}
	}

	if in.Description != nil {
		if msg := task.CheckDescription(*in.Description); msg != "" {
			fields["description"] = msg
		} else {
			desc := strings.TrimSpace(*in.Description)
			patch.Description = &desc
		}
	}

	if in.Status != nil {
		if st := task.Status(*in.Status); st.IsValid() {
			patch.Status = &st
		} else {
			fields["status"] = fmt.Sprintf("invalid: %q", *in.Status)
		}
	}

	if in.Deadline != nil {
		if d, msg := task.ParseDeadline(*in.Deadline, now); msg != "" {
			fields["deadline"] = msg
		} else {
			patch.Deadline = &d
		}
	}

	if in.Priority != nil {
		if p := task.Priority(*in.Priority); p.IsValid() {
			patch.Priority = &p
		} else {
			fields["priority"] = fmt.Sprintf("invalid: %q", *in.Priority)
		}
	}

	if err := domain.FieldErrors(fields); err != nil {
		return task.Patch{}, err
	}
	return patch, nil
}
