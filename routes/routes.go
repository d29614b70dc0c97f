package routes

import (
	"github.com/weijinqqq/smart-fitness-backend/controllers"
	"github.com/weijinqqq/smart-fitness-backend/middlewares"
	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services to controllers and lays out the route table.
// Auth gating per route follows the original API surface: meal logging,
// achievement listing and recommendations are intentionally public reads.
func SetupRouter(db *gorm.DB) *gin.Engine {
	hub := services.NewRealtimeHub()
	notifier := services.NewNotifier(db, hub)

	userSvc := services.NewUserService(db)
	achievementSvc := services.NewAchievementService(db, notifier)
	activitySvc := services.NewActivityService(db, achievementSvc)
	mealSvc := services.NewMealService(db)
	nutritionSvc := services.NewNutritionService(db)
	planSvc := services.NewPlanService(db)
	forumSvc := services.NewForumService(db)
	weatherSvc := services.NewWeatherService()
	recommendationSvc := services.NewRecommendationService(weatherSvc)

	authCtl := controllers.NewAuthController(userSvc)
	userCtl := controllers.NewUserController(userSvc)
	activityCtl := controllers.NewActivityController(activitySvc)
	mealCtl := controllers.NewMealController(mealSvc, nutritionSvc)
	planCtl := controllers.NewPlanController(planSvc)
	achievementCtl := controllers.NewAchievementController(achievementSvc)
	recommendationCtl := controllers.NewRecommendationController(userSvc, recommendationSvc)
	forumCtl := controllers.NewForumController(forumSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	auth := middlewares.AuthMiddleware()
	sameUser := middlewares.RequireSameUser()

	r := gin.Default()

	// Accounts
	r.POST("/register", authCtl.Register)
	r.POST("/login", authCtl.Login)
	r.GET("/users/:id", userCtl.GetUser)
	r.PUT("/users/:id", auth, sameUser, userCtl.UpdateProfile)

	// Activities (achievement evaluation runs on creation)
	r.POST("/activities", auth, activityCtl.Create)
	r.GET("/users/:id/activities", auth, sameUser, activityCtl.List)

	// Meals and nutrition tips
	r.POST("/meals", mealCtl.Create)
	r.GET("/users/:id/meals", mealCtl.List)
	r.GET("/users/:id/nutrition_tips", mealCtl.NutritionTips)

	// Fitness plans
	r.GET("/fitness_plans/preset", planCtl.Presets)
	r.POST("/users/:id/fitness_plans", auth, sameUser, planCtl.Create)
	r.GET("/users/:id/fitness_plans", auth, sameUser, planCtl.List)

	// Achievements and recommendations
	r.GET("/users/:id/achievements", achievementCtl.List)
	r.GET("/users/:id/recommendation", recommendationCtl.Get)

	// Forum
	r.POST("/forum/posts", auth, forumCtl.CreatePost)
	r.GET("/forum/posts", forumCtl.ListPosts)
	r.GET("/forum/posts/:id", forumCtl.GetPost)
	r.PUT("/forum/posts/:id", auth, forumCtl.UpdatePost)
	r.DELETE("/forum/posts/:id", auth, forumCtl.DeletePost)
	r.POST("/forum/posts/:id/comments", auth, forumCtl.CreateComment)
	r.DELETE("/forum/comments/:id", auth, forumCtl.DeleteComment)

	// Realtime achievement notifications
	r.GET("/ws", auth, realtimeCtl.Connect)

	return r
}
