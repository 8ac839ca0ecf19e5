package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Exam Session API",
        "description": "Scheduling backend for university exam sessions",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Rooms", "description": "Exam room directory"},
        {"name": "Subjects", "description": "Study programme subjects"},
        {"name": "Exams", "description": "Exams per subject"},
        {"name": "ExamTerms", "description": "Term proposals and decisions"},
        {"name": "SessionPeriods", "description": "Exam session calendar"},
        {"name": "DemoUsers", "description": "Demo user selector"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/rooms": {
            "get": {
                "tags": ["Rooms"],
                "summary": "List rooms sorted by name",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Rooms"],
                "summary": "Create room",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "DUPLICATE_ROOM", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/rooms/{nazwa}": {
            "get": {
                "tags": ["Rooms"],
                "summary": "Get room by name",
                "parameters": [
                    {"name": "nazwa", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "ROOM_NOT_FOUND", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/rooms/check-availability": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Check room capacity and slot availability",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckRoomAvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "parameters": [
                    {"name": "kierunek", "in": "query", "type": "string"},
                    {"name": "typ_studiow", "in": "query", "type": "string"},
                    {"name": "rok", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSubjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exams": {
            "get": {
                "tags": ["Exams"],
                "summary": "List exams with subject details",
                "parameters": [
                    {"name": "kierunek", "in": "query", "type": "string"},
                    {"name": "typ_studiow", "in": "query", "type": "string"},
                    {"name": "rok", "in": "query", "type": "integer"},
                    {"name": "prowadzacy_name", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Exams"],
                "summary": "Create exam",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExamRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exams/{id}": {
            "get": {
                "tags": ["Exams"],
                "summary": "Get exam",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "EXAM_NOT_FOUND", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exam-terms": {
            "get": {
                "tags": ["ExamTerms"],
                "summary": "List exam terms ordered by date and time",
                "parameters": [
                    {"name": "kierunek", "in": "query", "type": "string"},
                    {"name": "typ_studiow", "in": "query", "type": "string"},
                    {"name": "rok", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["ExamTerms"],
                "summary": "Propose an exam term",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProposeTermRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "ROOM_TOO_SMALL", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "ROOM_NOT_FOUND or EXAM_NOT_FOUND", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "ROOM_OCCUPIED or COHORT_BUSY", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exam-terms/{id}": {
            "get": {
                "tags": ["ExamTerms"],
                "summary": "Get exam term",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "TERM_NOT_FOUND", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["ExamTerms"],
                "summary": "Approve or reject a proposed term",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecideTermRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "TERM_NOT_FOUND", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "INVALID_TRANSITION", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exam-terms/validation/check-room": {
            "get": {
                "tags": ["ExamTerms"],
                "summary": "Check whether a room slot is free",
                "parameters": [
                    {"name": "data", "in": "query", "required": true, "type": "string"},
                    {"name": "godzina", "in": "query", "required": true, "type": "string"},
                    {"name": "sala", "in": "query", "required": true, "type": "string"},
                    {"name": "exclude_term_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exam-terms/validation/check-students": {
            "get": {
                "tags": ["ExamTerms"],
                "summary": "Check whether a cohort is free on a day",
                "parameters": [
                    {"name": "kierunek", "in": "query", "required": true, "type": "string"},
                    {"name": "typ_studiow", "in": "query", "required": true, "type": "string"},
                    {"name": "rok", "in": "query", "required": true, "type": "integer"},
                    {"name": "data", "in": "query", "required": true, "type": "string"},
                    {"name": "exclude_term_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exam-terms/export": {
            "get": {
                "tags": ["ExamTerms"],
                "summary": "Export the term board as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "kierunek", "in": "query", "type": "string"},
                    {"name": "typ_studiow", "in": "query", "type": "string"},
                    {"name": "rok", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/session-periods": {
            "get": {
                "tags": ["SessionPeriods"],
                "summary": "List session periods, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["SessionPeriods"],
                "summary": "Create session period",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionPeriodRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/demo-users": {
            "get": {
                "tags": ["DemoUsers"],
                "summary": "List demo users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateRoomRequest": {
            "type": "object",
            "properties": {
                "nazwa": {"type": "string"},
                "budynek": {"type": "string"},
                "pojemnosc": {"type": "integer"},
                "typ": {"type": "string"}
            },
            "required": ["nazwa", "budynek", "pojemnosc"]
        },
        "CheckRoomAvailabilityRequest": {
            "type": "object",
            "properties": {
                "sala": {"type": "string"},
                "data": {"type": "string"},
                "godzina": {"type": "string"},
                "liczba_osob": {"type": "integer"}
            },
            "required": ["sala", "data", "godzina", "liczba_osob"]
        },
        "CreateSubjectRequest": {
            "type": "object",
            "properties": {
                "nazwa": {"type": "string"},
                "kierunek": {"type": "string"},
                "typ_studiow": {"type": "string"},
                "rok": {"type": "integer"}
            },
            "required": ["nazwa", "kierunek", "typ_studiow", "rok"]
        },
        "CreateExamRequest": {
            "type": "object",
            "properties": {
                "subject_id": {"type": "string"},
                "prowadzacy_name": {"type": "string"}
            },
            "required": ["subject_id", "prowadzacy_name"]
        },
        "ProposeTermRequest": {
            "type": "object",
            "properties": {
                "exam_id": {"type": "string"},
                "data": {"type": "string"},
                "godzina": {"type": "string"},
                "sala": {"type": "string"},
                "liczba_osob": {"type": "integer"},
                "proposed_by_role": {"type": "string"},
                "proposed_by_name": {"type": "string"}
            },
            "required": ["exam_id", "data", "godzina", "sala", "liczba_osob", "proposed_by_role", "proposed_by_name"]
        },
        "DecideTermRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["approved", "rejected"]},
                "approved_by_role": {"type": "string"},
                "approved_by_name": {"type": "string"}
            },
            "required": ["status", "approved_by_role", "approved_by_name"]
        },
        "CreateSessionPeriodRequest": {
            "type": "object",
            "properties": {
                "semestr": {"type": "string", "enum": ["zimowy", "letni"]},
                "rok_akademicki": {"type": "string"},
                "data_start": {"type": "string"},
                "data_end": {"type": "string"}
            },
            "required": ["semestr", "rok_akademicki", "data_start", "data_end"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
