package handlers

import (
	"fmt"

	"spendguard/internal/dto"
	"spendguard/internal/models"
	"spendguard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// ListGoals godoc
// @Summary List goals
// @Description Get all goals for the authenticated user, default goal first
// @Tags goals
// @Produce json
// @Success 200 {object} dto.GoalListResponse
// @Security Bearer
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	goals, err := h.goalService.ListGoals(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch goals")
	}

	resp := dto.GoalListResponse{
		Success: true,
		Goals:   make([]dto.GoalResponse, 0, len(goals)),
	}
	for _, goal := range goals {
		resp.Goals = append(resp.Goals, goalResponse(goal))
	}

	return c.JSON(resp)
}

// CreateGoal godoc
// @Summary Create a goal
// @Description Create a new goal; marking it default clears other defaults
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal to create"
// @Success 201 {object} dto.GoalEnvelope
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.CreateGoal(c.Context(), userID, service.CreateGoalInput{
		Name:          req.Name,
		Type:          models.GoalType(req.Type),
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Period:        models.GoalPeriod(req.Period),
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create goal")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.GoalEnvelope{
		Success: true,
		Goal:    goalResponse(goal),
		Message: "Goal created successfully",
	})
}

// InitializeDefaultGoal godoc
// @Summary Initialize default goal
// @Description Seed the default $100 daily spending goal; idempotent
// @Tags goals
// @Produce json
// @Success 200 {object} dto.GoalEnvelope
// @Success 201 {object} dto.GoalEnvelope
// @Security Bearer
// @Router /goals/initialize [post]
func (h *GoalHandler) InitializeDefaultGoal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	goal, created, err := h.goalService.InitializeDefaultGoal(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to initialize goal")
	}

	status := fiber.StatusOK
	message := "User already has a default goal"
	if created {
		status = fiber.StatusCreated
		message = "Default goal created successfully"
	}

	return c.Status(status).JSON(dto.GoalEnvelope{
		Success: true,
		Goal:    goalResponse(goal),
		Message: message,
	})
}

// UpdateGoal godoc
// @Summary Update a goal
// @Description Update goal fields; setting is_default clears other defaults
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalEnvelope
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req dto.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.UpdateGoal(c.Context(), userID, goalID, service.UpdateGoalInput{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update goal")
	}

	return c.JSON(dto.GoalEnvelope{
		Success: true,
		Goal:    goalResponse(goal),
		Message: "Goal updated successfully",
	})
}

// ResetDailyGoals godoc
// @Summary Reset daily spending goals
// @Description Zero the current amount of daily spending goals
// @Tags goals
// @Produce json
// @Success 200 {object} dto.ResetDailyResponse
// @Security Bearer
// @Router /goals/reset-daily [post]
func (h *GoalHandler) ResetDailyGoals(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	count, err := h.goalService.ResetDailyGoals(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to reset daily goals")
	}

	return c.JSON(dto.ResetDailyResponse{
		Success:    true,
		ResetCount: count,
		Message:    fmt.Sprintf("Reset %d daily spending goal(s)", count),
	})
}
