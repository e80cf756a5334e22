package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/registry/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AdminHandler exposes the master register maintenance endpoints.
type AdminHandler struct {
	addStudentUC        usecases.AddStudentRecordExecutor
	addStaffUC          usecases.AddStaffRecordExecutor
	deactivateStudentUC usecases.DeactivateStudentRecordExecutor
	deactivateStaffUC   usecases.DeactivateStaffRecordExecutor
	logger              logger.Interface
}

func NewAdminHandler(
	addStudentUC usecases.AddStudentRecordExecutor,
	addStaffUC usecases.AddStaffRecordExecutor,
	deactivateStudentUC usecases.DeactivateStudentRecordExecutor,
	deactivateStaffUC usecases.DeactivateStaffRecordExecutor,
) *AdminHandler {
	return &AdminHandler{
		addStudentUC:        addStudentUC,
		addStaffUC:          addStaffUC,
		deactivateStudentUC: deactivateStudentUC,
		deactivateStaffUC:   deactivateStaffUC,
		logger:              logger.NewLogger(),
	}
}

// AddStudent handles POST /admin/students
func (h *AdminHandler) AddStudent(c *gin.Context) {
	var req AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addStudentUC.Execute(c.Request.Context(), usecases.AddStudentRecordCommand{
		IndexNumber: req.IndexNumber,
		FullName:    req.FullName,
		Email:       req.Email,
		Course:      req.Course,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Student record added successfully")
}

// AddStaff handles POST /admin/staff
func (h *AdminHandler) AddStaff(c *gin.Context) {
	var req AddStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addStaffUC.Execute(c.Request.Context(), usecases.AddStaffRecordCommand{
		StaffID:  req.StaffID,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff record added successfully")
}

// DeactivateStudent handles POST /admin/students/deactivate
func (h *AdminHandler) DeactivateStudent(c *gin.Context) {
	var req DeactivateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.deactivateStudentUC.Execute(c.Request.Context(), usecases.DeactivateStudentRecordCommand{
		IndexNumber: req.IndexNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Student record deactivated", nil)
}

// DeactivateStaff handles POST /admin/staff/deactivate
func (h *AdminHandler) DeactivateStaff(c *gin.Context) {
	var req DeactivateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.deactivateStaffUC.Execute(c.Request.Context(), usecases.DeactivateStaffRecordCommand{
		StaffID: req.StaffID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff record deactivated", nil)
}
