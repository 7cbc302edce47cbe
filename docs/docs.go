// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [{"description": "Signup data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SignupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SignupResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Sets the http-only session cookie and also returns the token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [{"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Expires the session cookie. Always succeeds.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}
                }
            }
        },
        "/health-activity/activities": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["health-activity"],
                "summary": "List my activities, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Activity"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health-activity"],
                "summary": "Log an activity",
                "parameters": [{"description": "Activity", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ActivityRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.ActivityCreated"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/health-activity/nutrition": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["health-activity"],
                "summary": "List my meals, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Nutrition"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health-activity"],
                "summary": "Log a meal",
                "parameters": [{"description": "Meal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.NutritionRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.NutritionCreated"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/health-activity/sleep": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["health-activity"],
                "summary": "List my sleep, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Sleep"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health-activity"],
                "summary": "Log a sleep period",
                "parameters": [{"description": "Sleep", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SleepRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SleepCreated"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get my profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Replace my profile",
                "parameters": [{"description": "Profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ProfileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.SignupRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string", "minLength": 8}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.UserSummary": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "id": {"type": "string"}, "name": {"type": "string"}}
        },
        "handler.SignupResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.UserSummary"}}
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "success": {"type": "boolean"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.UserSummary"}}
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.ActivityRequest": {
            "type": "object",
            "required": ["activityType", "caloriesBurned", "duration", "intensity"],
            "properties": {
                "activityType": {"type": "string"},
                "caloriesBurned": {"type": "number", "minimum": 0},
                "duration": {"type": "number", "minimum": 0},
                "intensity": {"type": "string", "enum": ["Low", "Medium", "High"]},
                "notes": {"type": "string"}
            }
        },
        "handler.FoodItemRequest": {
            "type": "object",
            "required": ["calories", "name"],
            "properties": {
                "calories": {"type": "number", "minimum": 0},
                "carbs": {"type": "number", "minimum": 0},
                "fats": {"type": "number", "minimum": 0},
                "name": {"type": "string"},
                "protein": {"type": "number", "minimum": 0},
                "servingSize": {"type": "string"}
            }
        },
        "handler.NutritionRequest": {
            "type": "object",
            "required": ["foodItems", "mealType"],
            "properties": {
                "foodItems": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/handler.FoodItemRequest"}},
                "mealType": {"type": "string", "enum": ["Breakfast", "Lunch", "Dinner", "Snack"]},
                "notes": {"type": "string"},
                "totalCalories": {"type": "number", "minimum": 0}
            }
        },
        "handler.SleepRequest": {
            "type": "object",
            "required": ["endTime", "quality", "startTime"],
            "properties": {
                "endTime": {"type": "string", "format": "date-time"},
                "notes": {"type": "string"},
                "quality": {"type": "string", "enum": ["Poor", "Fair", "Good", "Excellent"]},
                "startTime": {"type": "string", "format": "date-time"}
            }
        },
        "handler.ProfileRequest": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "minimum": 0, "maximum": 150},
                "goals": {"type": "string"},
                "height": {"type": "string", "maxLength": 64},
                "weight": {"type": "string", "maxLength": 64}
            }
        },
        "handler.ActivityCreated": {
            "type": "object",
            "properties": {"activity": {"$ref": "#/definitions/model.Activity"}, "message": {"type": "string"}}
        },
        "handler.NutritionCreated": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "nutrition": {"$ref": "#/definitions/model.Nutrition"}}
        },
        "handler.SleepCreated": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "sleep": {"$ref": "#/definitions/model.Sleep"}}
        },
        "model.Activity": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "activityType": {"type": "string"},
                "caloriesBurned": {"type": "number"},
                "date": {"type": "string"},
                "duration": {"type": "number"},
                "intensity": {"type": "string"},
                "notes": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "model.FoodItem": {
            "type": "object",
            "properties": {
                "calories": {"type": "number"},
                "carbs": {"type": "number"},
                "fats": {"type": "number"},
                "name": {"type": "string"},
                "protein": {"type": "number"},
                "servingSize": {"type": "string"}
            }
        },
        "model.Nutrition": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "date": {"type": "string"},
                "foodItems": {"type": "array", "items": {"$ref": "#/definitions/model.FoodItem"}},
                "mealType": {"type": "string"},
                "notes": {"type": "string"},
                "totalCalories": {"type": "number"},
                "userId": {"type": "string"}
            }
        },
        "model.Sleep": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "date": {"type": "string"},
                "duration": {"type": "integer"},
                "endTime": {"type": "string"},
                "notes": {"type": "string"},
                "quality": {"type": "string"},
                "startTime": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "model.Profile": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "goals": {"type": "string"},
                "height": {"type": "string"},
                "weight": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "profile": {"$ref": "#/definitions/model.Profile"},
                "updatedAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "description": "Session token set by /auth/login.",
            "type": "apiKey",
            "name": "token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "HealthFit API",
	Description:      "Health and fitness tracking API with cookie-based JWT sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
