package main

// handlers.go HTTP boundary: decode, validate, dispatch to the repository

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	var nfe *NotFoundError
	var ce *ConflictError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	case errors.As(err, &nfe):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": nfe.Error()})
	case errors.As(err, &ce):
		writeJSON(w, http.StatusConflict, map[string]string{"error": ce.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ValidationError{Fields: map[string]string{"body": "malformed request: " + err.Error()}}
	}
	return nil
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, &ValidationError{Fields: map[string]string{"id": "must be a positive integer"}}
	}
	return uint(id), nil
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func GetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	info, err := getPersonalInfo()
	if err != nil {
		writeError(w, err)
		return
	}
	// Encodes as JSON null when no record exists yet.
	writeJSON(w, http.StatusOK, info)
}

func UpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var in PersonalInfoInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	info, err := upsertPersonalInfo(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func GetWorkExperience(w http.ResponseWriter, r *http.Request) {
	rows, err := listWorkExperience()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func CreateWorkExperience(w http.ResponseWriter, r *http.Request) {
	var in CreateWorkExperienceInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	row, err := createWorkExperience(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func UpdateWorkExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in UpdateWorkExperienceInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	row, err := updateWorkExperience(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func DeleteWorkExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := deleteWorkExperience(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetEducation(w http.ResponseWriter, r *http.Request) {
	rows, err := listEducation()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func CreateEducation(w http.ResponseWriter, r *http.Request) {
	var in CreateEducationInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	row, err := createEducation(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in UpdateEducationInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	row, err := updateEducation(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := deleteEducation(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetSkills(w http.ResponseWriter, r *http.Request) {
	rows, err := listSkills()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func CreateSkill(w http.ResponseWriter, r *http.Request) {
	var in CreateSkillInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	row, err := createSkill(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in UpdateSkillInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	row, err := updateSkill(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := deleteSkill(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetAwardsCertifications(w http.ResponseWriter, r *http.Request) {
	rows, err := listAwardsCertifications()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func CreateAwardCertification(w http.ResponseWriter, r *http.Request) {
	var in CreateAwardCertificationInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	row, err := createAwardCertification(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func UpdateAwardCertification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in UpdateAwardCertificationInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	row, err := updateAwardCertification(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func DeleteAwardCertification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := deleteAwardCertification(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetPortfolioProjects(w http.ResponseWriter, r *http.Request) {
	rows, err := listPortfolioProjects()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func CreatePortfolioProject(w http.ResponseWriter, r *http.Request) {
	var in CreatePortfolioProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	row, err := createPortfolioProject(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func UpdatePortfolioProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in UpdatePortfolioProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	in.ID = id
	row, err := updatePortfolioProject(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func DeletePortfolioProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := deletePortfolioProject(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetContactForms(w http.ResponseWriter, r *http.Request) {
	rows, err := listContactForms()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func CreateContactForm(w http.ResponseWriter, r *http.Request) {
	var in CreateContactFormInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	row, err := createContactForm(&in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}
