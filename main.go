// main.go service wiring for the portfolio backend
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "portfolio.db"
	}
	initDB(dbPath)

	mux := newMux()

	frontendURL := os.Getenv("FRONTEND_URL")
	frontendURL2 := os.Getenv("FRONTEND_URL2")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{frontendURL, frontendURL2},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("Portfolio backend running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", HealthCheck)

	mux.HandleFunc("GET /personal-info", GetPersonalInfo)
	mux.HandleFunc("PUT /personal-info", UpdatePersonalInfo)

	mux.HandleFunc("GET /work-experience", GetWorkExperience)
	mux.HandleFunc("POST /work-experience", CreateWorkExperience)
	mux.HandleFunc("PUT /work-experience/{id}", UpdateWorkExperience)
	mux.HandleFunc("DELETE /work-experience/{id}", DeleteWorkExperience)

	mux.HandleFunc("GET /education", GetEducation)
	mux.HandleFunc("POST /education", CreateEducation)
	mux.HandleFunc("PUT /education/{id}", UpdateEducation)
	mux.HandleFunc("DELETE /education/{id}", DeleteEducation)

	mux.HandleFunc("GET /skills", GetSkills)
	mux.HandleFunc("POST /skills", CreateSkill)
	mux.HandleFunc("PUT /skills/{id}", UpdateSkill)
	mux.HandleFunc("DELETE /skills/{id}", DeleteSkill)

	mux.HandleFunc("GET /awards-certifications", GetAwardsCertifications)
	mux.HandleFunc("POST /awards-certifications", CreateAwardCertification)
	mux.HandleFunc("PUT /awards-certifications/{id}", UpdateAwardCertification)
	mux.HandleFunc("DELETE /awards-certifications/{id}", DeleteAwardCertification)

	mux.HandleFunc("GET /portfolio-projects", GetPortfolioProjects)
	mux.HandleFunc("POST /portfolio-projects", CreatePortfolioProject)
	mux.HandleFunc("PUT /portfolio-projects/{id}", UpdatePortfolioProject)
	mux.HandleFunc("DELETE /portfolio-projects/{id}", DeletePortfolioProject)

	mux.HandleFunc("GET /contact-forms", GetContactForms)
	mux.HandleFunc("POST /contact-forms", CreateContactForm)

	return mux
}
