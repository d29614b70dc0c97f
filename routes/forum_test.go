package routes

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func createPost(t *testing.T, r *gin.Engine, token, title string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/forum/posts", token, gin.H{
		"title": title, "content": "some content",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["post_id"].(float64))
}

func TestForumPostLifecycle(t *testing.T) {
	r, _ := setupTestRouter(t)
	_, token := registerAndLogin(t, r, "amber")
	_, otherToken := registerAndLogin(t, r, "blake")

	w := doJSON(t, r, http.MethodPost, "/forum/posts", "", gin.H{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/forum/posts", token, gin.H{"title": "only title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	postID := createPost(t, r, token, "hello forum")

	// Public browsing.
	w = doJSON(t, r, http.MethodGet, "/forum/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, "/forum/posts/"+itoa(postID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/forum/posts/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Only the author may update or delete.
	w = doJSON(t, r, http.MethodPut, "/forum/posts/"+itoa(postID), otherToken, gin.H{"title": "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, "/forum/posts/"+itoa(postID), token, gin.H{"title": "edited"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/forum/posts/"+itoa(postID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/forum/posts/"+itoa(postID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePostCascadesComments(t *testing.T) {
	r, db := setupTestRouter(t)
	_, token := registerAndLogin(t, r, "cora")
	_, commenterToken := registerAndLogin(t, r, "dean")

	postID := createPost(t, r, token, "cascade me")
	keptID := createPost(t, r, token, "keep me")

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/forum/posts/"+itoa(postID)+"/comments", commenterToken, gin.H{"content": "nice"})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := doJSON(t, r, http.MethodPost, "/forum/posts/"+itoa(keptID)+"/comments", commenterToken, gin.H{"content": "kept"})
	require.Equal(t, http.StatusCreated, w.Code)
	keptCommentID := uint(decode(t, w)["comment_id"].(float64))

	w = doJSON(t, r, http.MethodDelete, "/forum/posts/"+itoa(postID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count)
	assert.Equal(t, int64(0), count, "deleting a post removes its comments")

	db.Model(&models.Comment{}).Where("post_id = ?", keptID).Count(&count)
	assert.Equal(t, int64(1), count, "other posts' comments survive")

	// Deleting a comment never removes its parent post.
	w = doJSON(t, r, http.MethodDelete, "/forum/comments/"+itoa(keptCommentID), commenterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts int64
	db.Model(&models.Post{}).Where("id = ?", keptID).Count(&posts)
	assert.Equal(t, int64(1), posts)
}

func TestCommentRules(t *testing.T) {
	r, _ := setupTestRouter(t)
	_, token := registerAndLogin(t, r, "elsa")
	_, otherToken := registerAndLogin(t, r, "finn")

	postID := createPost(t, r, token, "discuss")

	w := doJSON(t, r, http.MethodPost, "/forum/posts/99999/comments", token, gin.H{"content": "lost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/forum/posts/"+itoa(postID)+"/comments", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/forum/posts/"+itoa(postID)+"/comments", otherToken, gin.H{"content": "mine"})
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := uint(decode(t, w)["comment_id"].(float64))

	// Only the comment author may delete it, post ownership is irrelevant.
	w = doJSON(t, r, http.MethodDelete, "/forum/comments/"+itoa(commentID), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/forum/comments/"+itoa(commentID), otherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFitnessPlans(t *testing.T) {
	r, _ := setupTestRouter(t)
	userID, token := registerAndLogin(t, r, "gina")
	_, otherToken := registerAndLogin(t, r, "hank")

	// Presets are seeded and public.
	w := doJSON(t, r, http.MethodGet, "/fitness_plans/preset", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	presets := decode(t, w)
	require.GreaterOrEqual(t, presets["count"].(float64), float64(1))
	firstPreset := presets["plans"].([]any)[0].(map[string]any)
	presetID := uint(firstPreset["id"].(float64))

	base := pathUser(userID) + "/fitness_plans"

	w = doJSON(t, r, http.MethodPost, base, otherToken, gin.H{"plan_id": presetID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, base, token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "needs plan_id or plan_name+content")

	w = doJSON(t, r, http.MethodPost, base, token, gin.H{"plan_id": 99999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, base, token, gin.H{"plan_id": presetID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, base, token, gin.H{
		"plan_name": "my own", "content": `{"weeks":2}`,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.Equal(t, float64(2), list["count"])
	for _, p := range list["plans"].([]any) {
		assert.False(t, p.(map[string]any)["is_preset"].(bool), "copies are never presets")
	}
}

func TestMealsAndNutritionTips(t *testing.T) {
	r, _ := setupTestRouter(t)
	userID, token := registerAndLogin(t, r, "iris")

	w := doJSON(t, r, http.MethodPut, pathUser(userID), token, gin.H{"fitness_goal": "weight_loss"})
	require.Equal(t, http.StatusOK, w.Code)

	// Meal logging is not gated (matches the original API surface).
	w = doJSON(t, r, http.MethodPost, "/meals", "", gin.H{
		"user_id": userID, "name": "big burger", "calories": 1900, "protein": 40.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/meals", "", gin.H{"name": "no user"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, pathUser(userID)+"/meals", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, pathUser(userID)+"/nutrition_tips", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tips := decode(t, w)["tips"].([]any)
	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "weight-loss calorie target")
	assert.Contains(t, tips[1], "Fewer than three meals")
}

func TestRecommendationEndpoint(t *testing.T) {
	// Point the weather client at a dead server so the fallback path is
	// deterministic and no real network call happens.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	t.Setenv("WEATHER_API_URL", dead.URL)

	r, _ := setupTestRouter(t)
	userID, token := registerAndLogin(t, r, "jack")

	w := doJSON(t, r, http.MethodGet, pathUser(userID)+"/recommendation", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "location not set yet")

	w = doJSON(t, r, http.MethodGet, "/users/99999/recommendation", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, pathUser(userID), token, gin.H{"location": "Lisbon"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, pathUser(userID)+"/recommendation", "", nil)
	require.Equal(t, http.StatusOK, w.Code, "provider failure must never surface as an error")
	body := decode(t, w)
	assert.NotEmpty(t, body["recommendation"])
	assert.NotEmpty(t, body["timestamp"])
}
