// ABOUTME: MCP tool implementations for fitplan.
// ABOUTME: Profile, plan, tracker, and export operations for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/profile"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get a user's profile with derived BMI/BMR/TDEE",
	}, s.handleGetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_profile",
		Description: "Create or replace a user's profile; metrics are computed automatically",
	}, s.handleSaveProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_plan",
		Description: "Generate the deterministic nutrition and exercise plan for a user",
	}, s.handleGeneratePlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_steps",
		Description: "Set today's step count (absolute value)",
	}, s.handleLogSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_water",
		Description: "Add water intake in ml (default glass is 250 ml)",
	}, s.handleAddWater)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_sleep",
		Description: "Set today's sleep hours (0-24)",
	}, s.handleLogSleep)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_meal",
		Description: "Mark a meal completed or pending for today",
	}, s.handleSetMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_exercise",
		Description: "Mark an exercise completed or pending for a weekday",
	}, s.handleSetExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "replace_food",
		Description: "Substitute a planned food item for today",
	}, s.handleReplaceFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "progress",
		Description: "Get today's progress stats (completion ratios and counters)",
	}, s.handleProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_summary",
		Description: "Get the 7-day tracking summary ending today",
	}, s.handleWeeklySummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_plan",
		Description: "Export the plan plus current week's tracking snapshot",
	}, s.handleExportPlan)
}

// Tool input/output types

type userInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
}

type saveProfileInput struct {
	UserID        string  `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
	Name          string  `json:"name,omitempty" jsonschema:"Display name"`
	Age           int     `json:"age" jsonschema:"Age in years"`
	Gender        string  `json:"gender" jsonschema:"Gender (male, female, other)"`
	HeightCm      float64 `json:"height_cm" jsonschema:"Height in cm"`
	WeightKg      float64 `json:"weight_kg" jsonschema:"Weight in kg"`
	Goal          string  `json:"fitness_goal" jsonschema:"Fitness goal (lose, maintain, gain)"`
	ActivityLevel string  `json:"activity_level" jsonschema:"Activity level (sedentary, light, moderate, active, very_active)"`
	SleepTarget   float64 `json:"sleep_target_hours,omitempty" jsonschema:"Target sleep hours (default 7)"`
}

type profileOutput struct {
	Profile *models.UserProfile `json:"profile"`
	Message string              `json:"message"`
}

type logStepsInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
	Steps  int    `json:"steps" jsonschema:"Absolute step count for today"`
}

type addWaterInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
	ML     int    `json:"ml,omitempty" jsonschema:"Milliliters to add (default 250)"`
}

type logSleepInput struct {
	UserID string  `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
	Hours  float64 `json:"hours" jsonschema:"Sleep hours for today (0-24)"`
}

type setMealInput struct {
	UserID   string `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
	MealType string `json:"meal_type" jsonschema:"Meal type (breakfast, lunch, dinner, snack)"`
	Done     bool   `json:"done" jsonschema:"true to complete, false to return to pending"`
}

type setExerciseInput struct {
	UserID   string `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
	Day      string `json:"day" jsonschema:"Weekday key (monday..sunday)"`
	Exercise string `json:"exercise" jsonschema:"Exercise name from the weekly template"`
	Done     bool   `json:"done" jsonschema:"true to complete, false to return to pending"`
}

type replaceFoodInput struct {
	UserID      string `json:"user_id,omitempty" jsonschema:"User ID (defaults to configured user)"`
	MealType    string `json:"meal_type" jsonschema:"Meal type (breakfast, lunch, dinner, snack)"`
	Original    string `json:"original" jsonschema:"Planned food item being replaced"`
	Replacement string `json:"replacement" jsonschema:"Replacement food item"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profiles.Get(s.user(input.UserID))
	if err != nil {
		return nil, nil, err
	}
	return nil, p, nil
}

func (s *Server) handleSaveProfile(ctx context.Context, req *mcp.CallToolRequest, input saveProfileInput) (*mcp.CallToolResult, profileOutput, error) {
	p, err := s.profiles.Create(profile.Params{
		UserID:        s.user(input.UserID),
		Name:          input.Name,
		Age:           input.Age,
		Gender:        models.Gender(input.Gender),
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		Goal:          models.Goal(input.Goal),
		ActivityLevel: models.ActivityLevel(input.ActivityLevel),
		SleepTarget:   input.SleepTarget,
	})
	if err != nil {
		return nil, profileOutput{}, err
	}
	return nil, profileOutput{
		Profile: p,
		Message: fmt.Sprintf("Saved profile for %s (BMI %.1f, TDEE %.0f kcal)", p.UserID, p.BMI, p.TDEE),
	}, nil
}

func (s *Server) handleGeneratePlan(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, any, error) {
	p, err := s.gen.Generate(s.user(input.UserID))
	if err != nil {
		return nil, nil, err
	}
	return nil, p, nil
}

func (s *Server) handleLogSteps(ctx context.Context, req *mcp.CallToolRequest, input logStepsInput) (*mcp.CallToolResult, any, error) {
	r, err := s.trk.UpdateSteps(s.user(input.UserID), input.Steps)
	if err != nil {
		return nil, nil, err
	}
	return nil, r, nil
}

func (s *Server) handleAddWater(ctx context.Context, req *mcp.CallToolRequest, input addWaterInput) (*mcp.CallToolResult, any, error) {
	r, err := s.trk.AddWater(s.user(input.UserID), input.ML)
	if err != nil {
		return nil, nil, err
	}
	return nil, r, nil
}

func (s *Server) handleLogSleep(ctx context.Context, req *mcp.CallToolRequest, input logSleepInput) (*mcp.CallToolResult, any, error) {
	r, err := s.trk.UpdateSleep(s.user(input.UserID), input.Hours)
	if err != nil {
		return nil, nil, err
	}
	return nil, r, nil
}

func (s *Server) handleSetMeal(ctx context.Context, req *mcp.CallToolRequest, input setMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	userID := s.user(input.UserID)
	var err error
	if input.Done {
		_, err = s.trk.CompleteMeal(userID, input.MealType)
	} else {
		_, err = s.trk.UncompleteMeal(userID, input.MealType)
	}
	if err != nil {
		return nil, simpleOutput{}, err
	}
	state := "pending"
	if input.Done {
		state = "completed"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Marked %s %s", input.MealType, state),
	}, nil
}

func (s *Server) handleSetExercise(ctx context.Context, req *mcp.CallToolRequest, input setExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	userID := s.user(input.UserID)
	var err error
	if input.Done {
		_, err = s.trk.CompleteExercise(userID, input.Day, input.Exercise)
	} else {
		_, err = s.trk.UncompleteExercise(userID, input.Day, input.Exercise)
	}
	if err != nil {
		return nil, simpleOutput{}, err
	}
	state := "pending"
	if input.Done {
		state = "completed"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Marked %s (%s) %s", input.Exercise, input.Day, state),
	}, nil
}

func (s *Server) handleReplaceFood(ctx context.Context, req *mcp.CallToolRequest, input replaceFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	_, err := s.trk.ReplaceFood(s.user(input.UserID), input.MealType, input.Original, input.Replacement)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Replaced %q with %q for %s", input.Original, input.Replacement, input.MealType),
	}, nil
}

func (s *Server) handleProgress(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, any, error) {
	stats, err := s.trk.GetProgressStats(s.user(input.UserID))
	if err != nil {
		return nil, nil, err
	}
	return nil, stats, nil
}

func (s *Server) handleWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, any, error) {
	summary, err := s.trk.GetWeeklySummary(s.user(input.UserID), time.Now())
	if err != nil {
		return nil, nil, err
	}
	return nil, summary, nil
}

func (s *Server) handleExportPlan(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, any, error) {
	doc, err := s.exporter.Build(s.user(input.UserID), time.Now())
	if err != nil {
		return nil, nil, err
	}
	return nil, doc, nil
}
