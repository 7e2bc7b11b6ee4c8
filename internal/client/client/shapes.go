package client

import (
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/client/schema"
)

var captureObject = schema.Object{
	Fields: map[string]string{
		"id":           schema.RuleID,
		"userId":       schema.RuleID,
		"rawText":      schema.RuleText,
		"createdAt":    schema.RuleTimestamp,
		"updatedAt":    schema.RuleTimestamp,
		"migratedDate": schema.RuleOptionalTimestamp,
	},
}

var CaptureShape = schema.Shape[models.Capture]{Name: "Capture", Object: captureObject}

var CaptureListShape = schema.Shape[[]models.Capture]{Name: "CaptureList", Object: captureObject, List: true}

var userProfileObject = schema.Object{
	Fields: map[string]string{
		"id":          schema.RuleID,
		"userId":      schema.RuleID,
		"displayName": schema.RuleOptionalText,
		"firstName":   schema.RuleOptionalText,
		"lastName":    schema.RuleOptionalText,
		"avatarUrl":   schema.RuleOptionalText,
		"bio":         schema.RuleOptionalText,
		"timezone":    schema.RuleOptionalText,
		"preferences": schema.RuleOptionalRecord,
		"createdAt":   schema.RuleTimestamp,
		"updatedAt":   schema.RuleTimestamp,
	},
}

var oauthAccountObject = schema.Object{
	Fields: map[string]string{
		"id":                schema.RuleID,
		"userId":            schema.RuleID,
		"provider":          schema.RuleText,
		"providerAccountId": schema.RuleText,
		"tokenType":         schema.RuleOptionalText,
		"scope":             schema.RuleOptionalText,
		"expiresAt":         schema.RuleOptionalTimestamp,
		"createdAt":         schema.RuleTimestamp,
		"updatedAt":         schema.RuleTimestamp,
	},
}

var UserShape = schema.Shape[models.User]{
	Name: "User",
	Object: schema.Object{
		Fields: map[string]string{
			"id":            schema.RuleID,
			"email":         schema.RuleEmail,
			"username":      schema.RuleText,
			"emailVerified": schema.RuleBool,
			"password":      schema.RuleOptionalText,
			"lastLoginAt":   schema.RuleOptionalTimestamp,
			"createdAt":     schema.RuleTimestamp,
			"updatedAt":     schema.RuleTimestamp,
		},
		Nested: map[string]schema.Nested{
			"profile":       {Object: userProfileObject, Optional: true},
			"oauthAccounts": {Object: oauthAccountObject, Optional: true, List: true},
		},
	},
}

var VersionShape = schema.Shape[models.VersionInfo]{
	Name: "VersionInfo",
	Object: schema.Object{
		Fields: map[string]string{
			"version":   schema.RuleText,
			"service":   schema.RuleOptionalText,
			"timestamp": schema.RuleOptionalText,
		},
	},
}
