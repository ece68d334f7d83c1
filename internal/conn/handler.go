package conn

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/edudata/scorecard/internal/query"
	"github.com/edudata/scorecard/pkg"
)

type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	// don't manually set this. it comes from the client
	ReqId int `json:"__scd_client_req_id__"`
}

func NewErrorResponse(status int, err string) Response {
	return Response{Message: err, Status: status}
}

func NewResponse(status int, message string, data any) Response {
	return Response{Data: data, Message: message, Status: status}
}

type SearchRequest struct {
	Query string `json:"query"`
	// nil means in-state, matching the REST default
	InState *bool `json:"in_state"`
}

func SearchReqHandler(service *query.Service, raw []byte) Response {
	var req SearchRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	in_state := req.InState == nil || *req.InState
	schools, err := service.SearchSchools(req.Query, in_state)
	if err != nil {
		if query_error, ok := err.(*query.QueryError); ok {
			return NewErrorResponse(query_error.Status(), query_error.Error())
		}
		return NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	return NewResponse(
		http.StatusOK,
		fmt.Sprintf("Found %d schools", len(schools)),
		schools,
	)
}

type MajorsRequest struct {
	SchoolId any `json:"school_id"`
}

func MajorsReqHandler(service *query.Service, raw []byte) Response {
	var req MajorsRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	switch req.SchoolId.(type) {
	case float64, int:
	default:
		return NewErrorResponse(http.StatusBadRequest, "school_id must be a number")
	}

	majors := service.SchoolMajors(pkg.NumToInt(req.SchoolId))
	return NewResponse(
		http.StatusOK,
		fmt.Sprintf("Found %d majors", len(majors)),
		majors,
	)
}
