// Package models lists the OpenAI chat models available to the configured
// API key, for choosing translate.openai_model.
package models
