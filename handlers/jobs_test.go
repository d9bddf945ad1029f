// jobs_test.go - Tests for job CRUD, listing filters, and ownership

package handlers

import (
	"net/http"
	"testing"

	"go-job-portal/database"
	"go-job-portal/models"

	"github.com/stretchr/testify/assert"
)

// TestCreateAndListJobs covers posting a job and seeing it in the
// public listing
func TestCreateAndListJobs(t *testing.T) {
	setupTestDB("test_jobs.db")
	router := setupRouter()
	_, recruiterToken := seedUser("Rec", "rec@example.com", models.RoleRecruiter)

	// --- Create a job ---
	input := JobInput{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Category:    "Engineering",
		Location:    "Berlin",
		Salary:      "90000",
		CompanyName: "Acme",
	}
	w := doJSON(router, "POST", "/api/jobs", input, recruiterToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	job := parseBody(w)["job"].(map[string]interface{})
	assert.Equal(t, "Backend Engineer", job["title"])
	assert.Equal(t, "active", job["status"])

	// --- The public listing includes it, with the poster's name ---
	w = doJSON(router, "GET", "/api/jobs", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	jobs := parseBody(w)["jobs"].([]interface{})
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Rec", jobs[0].(map[string]interface{})["posted_by_name"])

	// --- Missing fields are rejected ---
	w = doJSON(router, "POST", "/api/jobs", map[string]string{"title": "No description"}, recruiterToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// --- A job seeker cannot post ---
	_, seekerToken := seedUser("Seeker", "seeker@example.com", models.RoleJobSeeker)
	w = doJSON(router, "POST", "/api/jobs", input, seekerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// --- No token at all ---
	w = doJSON(router, "POST", "/api/jobs", input, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestListJobFilters covers category, search, status, and limit filters
func TestListJobFilters(t *testing.T) {
	setupTestDB("test_jobs_filters.db")
	router := setupRouter()
	recruiter, _ := seedUser("Rec", "rec@example.com", models.RoleRecruiter)

	seedJob("Backend Engineer", "Engineering", "Berlin", "Acme", recruiter.ID)
	seedJob("Remote Designer", "Design", "Anywhere", "Pixel Co", recruiter.ID)
	closed := seedJob("Old Role", "Engineering", "Berlin", "Acme", recruiter.ID)
	database.DB.Model(&closed).Update("status", models.JobStatusClosed)

	// --- Category filter ---
	w := doJSON(router, "GET", "/api/jobs?category=Engineering", nil, "")
	jobs := parseBody(w)["jobs"].([]interface{})
	assert.Len(t, jobs, 1) // Closed job excluded even though category matches
	assert.Equal(t, "Backend Engineer", jobs[0].(map[string]interface{})["title"])

	// --- Search is case-insensitive across title, description, company ---
	w = doJSON(router, "GET", "/api/jobs?search=REMOTE", nil, "")
	jobs = parseBody(w)["jobs"].([]interface{})
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Remote Designer", jobs[0].(map[string]interface{})["title"])

	w = doJSON(router, "GET", "/api/jobs?search=pixel", nil, "")
	jobs = parseBody(w)["jobs"].([]interface{})
	assert.Len(t, jobs, 1)

	// --- Limit caps the result count ---
	w = doJSON(router, "GET", "/api/jobs?limit=1", nil, "")
	jobs = parseBody(w)["jobs"].([]interface{})
	assert.Len(t, jobs, 1)

	// --- Closed jobs still resolve on the detail endpoint ---
	w = doJSON(router, "GET", "/api/jobs/3", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// --- A missing id is a 404 ---
	w = doJSON(router, "GET", "/api/jobs/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestJobOwnership verifies that only the posting recruiter can update
// or delete a job, and that a non-owner sees 404, not 403
func TestJobOwnership(t *testing.T) {
	setupTestDB("test_jobs_ownership.db")
	router := setupRouter()
	owner, ownerToken := seedUser("Owner", "owner@example.com", models.RoleRecruiter)
	_, otherToken := seedUser("Other", "other@example.com", models.RoleRecruiter)

	job := seedJob("Backend Engineer", "Engineering", "Berlin", "Acme", owner.ID)

	update := JobInput{
		Title:       "Hijacked",
		Description: "x",
		Category:    "x",
		Location:    "x",
		Salary:      "1",
		CompanyName: "x",
		Status:      models.JobStatusClosed,
	}

	// --- Non-owner update looks like a missing job ---
	w := doJSON(router, "PUT", "/api/jobs/1", update, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var unchanged models.Job
	database.DB.First(&unchanged, job.ID)
	assert.Equal(t, "Backend Engineer", unchanged.Title)
	assert.Equal(t, models.JobStatusActive, unchanged.Status)

	// --- Non-owner delete likewise ---
	w = doJSON(router, "DELETE", "/api/jobs/1", nil, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "GET", "/api/jobs/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code) // Still retrievable

	// --- Owner update succeeds ---
	update.Title = "Senior Backend Engineer"
	update.Status = models.JobStatusActive
	w = doJSON(router, "PUT", "/api/jobs/1", update, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)

	database.DB.First(&unchanged, job.ID)
	assert.Equal(t, "Senior Backend Engineer", unchanged.Title)

	// --- Owner delete succeeds and the job is gone ---
	w = doJSON(router, "DELETE", "/api/jobs/1", nil, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/jobs/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestMyJobs verifies application counts on the recruiter dashboard
func TestMyJobs(t *testing.T) {
	setupTestDB("test_jobs_mine.db")
	router := setupRouter()
	recruiter, recruiterToken := seedUser("Rec", "rec@example.com", models.RoleRecruiter)
	seeker, _ := seedUser("Seeker", "seeker@example.com", models.RoleJobSeeker)

	applied := seedJob("With Applicant", "Engineering", "Berlin", "Acme", recruiter.ID)
	seedJob("No Applicants", "Engineering", "Berlin", "Acme", recruiter.ID)
	database.DB.Create(&models.Application{JobID: applied.ID, UserID: seeker.ID})

	w := doJSON(router, "GET", "/api/jobs/recruiter/my-jobs", nil, recruiterToken)
	assert.Equal(t, http.StatusOK, w.Code)

	jobs := parseBody(w)["jobs"].([]interface{})
	assert.Len(t, jobs, 2) // Zero-application jobs still appear

	counts := map[string]float64{}
	for _, j := range jobs {
		row := j.(map[string]interface{})
		counts[row["title"].(string)] = row["application_count"].(float64)
	}
	assert.Equal(t, float64(1), counts["With Applicant"])
	assert.Equal(t, float64(0), counts["No Applicants"])
}
