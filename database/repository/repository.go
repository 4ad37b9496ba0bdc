package repository

import (
	analyticsRepo "morisbiz/database/repository/analytics"
	businessRepo "morisbiz/database/repository/business"
	contactRepo "morisbiz/database/repository/contact"
	propertyRepo "morisbiz/database/repository/property"
)

// Re-export the BusinessRepository interface and constructor.
type BusinessRepository = businessRepo.BusinessRepository

var NewMongoBusinessRepo = businessRepo.NewMongoBusinessRepo

// Re-export the PropertyRepository interface and constructor.
type PropertyRepository = propertyRepo.PropertyRepository

var NewMongoPropertyRepo = propertyRepo.NewMongoPropertyRepo

// Re-export the ContactRepository interface and constructor.
type ContactRepository = contactRepo.ContactRepository

var NewMongoContactRepo = contactRepo.NewMongoContactRepo

// Re-export the AnalyticsRepository interface and constructor.
type AnalyticsRepository = analyticsRepo.AnalyticsRepository

var NewMongoAnalyticsRepo = analyticsRepo.NewMongoAnalyticsRepo
