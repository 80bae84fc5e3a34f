package community

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ol7mi/Hows/internal/api/handlers"
	"github.com/ol7mi/Hows/internal/core/community"
)

// maxSubmissionBytes caps the whole multipart submission at 64MB.
const maxSubmissionBytes = 64 << 20

// WriteHandler handles board submission with images and tags
type WriteHandler struct {
	service community.Service
}

// NewWriteHandler creates a new write handler
func NewWriteHandler(service community.Service) *WriteHandler {
	return &WriteHandler{service: service}
}

// HandleWriteWithImages creates a board with its images and tags in one call
// POST /community/write-with-images
//
// Multipart form fields: housing_type_code, space_type_code, area_size_code,
// board_contents, member_id; repeated "files" parts with parallel repeated
// "image_orders" and "tags" fields (tags is a JSON array per file).
func (h *WriteHandler) HandleWriteWithImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid multipart form")
		return
	}

	req := community.SubmitRequest{
		HousingTypeCode: r.FormValue("housing_type_code"),
		SpaceTypeCode:   r.FormValue("space_type_code"),
		AreaSizeCode:    r.FormValue("area_size_code"),
		Contents:        r.FormValue("board_contents"),
		MemberID:        r.FormValue("member_id"),
	}

	files := r.MultipartForm.File["files"]
	orders := r.MultipartForm.Value["image_orders"]
	tagsJSON := r.MultipartForm.Value["tags"]

	// The three parallel lists must line up exactly; mismatches are caller
	// errors, never silently truncated or padded.
	if len(files) != len(orders) || len(files) != len(tagsJSON) {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
			fmt.Sprintf("files (%d), image_orders (%d) and tags (%d) must have the same length",
				len(files), len(orders), len(tagsJSON)))
		return
	}

	for i, fh := range files {
		order, err := strconv.Atoi(orders[i])
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
				fmt.Sprintf("image_orders[%d] is not a number", i))
			return
		}

		var tags []community.TagInput
		if tagsJSON[i] != "" {
			if err := json.Unmarshal([]byte(tagsJSON[i]), &tags); err != nil {
				handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
					fmt.Sprintf("tags[%d] is not a valid tag array", i))
				return
			}
		}

		file, err := fh.Open()
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
				fmt.Sprintf("failed to read files[%d]", i))
			return
		}
		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest",
				fmt.Sprintf("failed to read files[%d]", i))
			return
		}

		req.Attachments = append(req.Attachments, community.Attachment{
			Data:        data,
			ContentType: fh.Header.Get("Content-Type"),
			Order:       order,
			Tags:        tags,
		})
	}

	boardSeq, err := h.service.SubmitPost(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"boardSeq": boardSeq,
	})
}

// writeServiceError maps community service errors to HTTP responses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case community.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, community.ErrUploadFailed):
		handlers.WriteError(w, http.StatusBadGateway, "UploadFailed", "Failed to store an attachment; nothing was saved")
	case community.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Board not found")
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process request")
	}
}
