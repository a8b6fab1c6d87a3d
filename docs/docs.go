// Package docs holds the Swagger description of the student API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/students": {
            "get": {
                "description": "Returns every student, or those whose student_id and/or name contain the given values (case-sensitive, combined with AND), newest enrollment first",
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List or search students",
                "parameters": [
                    {"type": "string", "description": "Substring of student_id", "name": "id", "in": "query"},
                    {"type": "string", "description": "Substring of name", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Matching students",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Student"}}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Creates a student; age, major and gpa are optional and stored as null when empty",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Create a student",
                "parameters": [
                    {
                        "description": "Student information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateStudentRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Student created successfully",
                        "schema": {"$ref": "#/definitions/dto.SuccessResponse"}
                    },
                    "500": {
                        "description": "Invalid data, duplicate student_id or store failure",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/students/{id}": {
            "get": {
                "description": "Retrieves the student whose student_id equals the path value",
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get a student",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Student", "schema": {"$ref": "#/definitions/models.Student"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrites the mutable fields of the student with the given student_id; student_id and enrollment_date never change",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Update a student",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "New field values",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpdateStudentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Student updated successfully", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes the student with the given student_id",
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Delete a student",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Student deleted successfully", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateStudentRequest": {
            "type": "object",
            "required": ["email", "name", "student_id"],
            "properties": {
                "age": {"type": "string", "example": "20"},
                "email": {"type": "string", "example": "a10@school.edu"},
                "gpa": {"type": "string", "example": "3.45"},
                "major": {"type": "string", "example": "Computer Science"},
                "name": {"type": "string", "example": "Nguyen Van A"},
                "student_id": {"type": "string", "example": "A10"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Student not found"}
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Student created successfully"}
            }
        },
        "dto.UpdateStudentRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "age": {"type": "string", "example": "21"},
                "email": {"type": "string", "example": "a10@school.edu"},
                "gpa": {"type": "string", "example": "3.60"},
                "major": {"type": "string", "example": "Mathematics"},
                "name": {"type": "string", "example": "Nguyen Van A"}
            }
        },
        "models.Student": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "example": 20},
                "email": {"type": "string", "example": "a10@school.edu"},
                "enrollment_date": {"type": "string", "example": "2024-09-01T00:00:00Z"},
                "gpa": {"type": "number", "example": 3.45},
                "id": {"type": "integer", "example": 1},
                "major": {"type": "string", "example": "Computer Science"},
                "name": {"type": "string", "example": "Nguyen Van A"},
                "student_id": {"type": "string", "example": "A10"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Student Records API",
	Description:      "CRUD API for student records",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
