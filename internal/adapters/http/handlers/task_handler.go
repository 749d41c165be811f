package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListMyTasks handles GET /api/v1/tasks and lists the caller's tasks.
func (h *TaskHandler) ListMyTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.listByOwner(w, r, ownerID)
}

// ListOwnerTasks handles GET /api/v1/users/{userId}/tasks.
func (h *TaskHandler) ListOwnerTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.listByOwner(w, r, ownerID)
}

func (h *TaskHandler) listByOwner(w http.ResponseWriter, r *http.Request, ownerID string) {
	tasks, err := h.service.GetByOwner(r.Context(), ownerID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BulkDeleteTasks handles POST /api/v1/tasks/bulk-delete.
func (h *TaskHandler) BulkDeleteTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	n, err := h.service.DeleteMultiple(r.Context(), req.IDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeletedResponse{Deleted: n})
}

// DeleteOwnerTasks handles DELETE /api/v1/users/{userId}/tasks.
func (h *TaskHandler) DeleteOwnerTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.service.DeleteByOwner(r.Context(), ownerID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeletedResponse{Deleted: n})
}
