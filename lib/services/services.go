// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"errors"
	"fmt"
	"reflect"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Service,Logger

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry starts services in registration order and stops
// them in reverse registration order.
type ServiceRegistry struct {
	services []Service
	started  int
	logger   Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		logger: logger,
	}
}

// RegisterService adds a service to the registry. A service
// of a type already registered is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	for _, registered := range s.services {
		if reflect.TypeOf(registered) == kind {
			s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
			return
		}
	}
	s.services = append(s.services, service)
}

// Len returns the number of registered services.
func (s *ServiceRegistry) Len() int {
	return len(s.services)
}

// StartAll calls `Service.Start()` for all registered Services.
// If a service fails to start, the services already started are
// stopped and the start error is returned.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting %d services", len(s.services))
	for _, service := range s.services[s.started:] {
		s.logger.Debugf("Starting service %T", service)
		err := service.Start()
		if err != nil {
			startErr := fmt.Errorf("starting service %T: %w", service, err)
			if stopErr := s.StopAll(); stopErr != nil {
				return errors.Join(startErr, stopErr)
			}
			return startErr
		}
		s.started++
	}
	s.logger.Debugf("All services started")
	return nil
}

// StopAll calls `Service.Stop()` for all started Services,
// in reverse order, and returns the errors encountered.
func (s *ServiceRegistry) StopAll() error {
	s.logger.Infof("Stopping %d services", s.started)
	var errs []error
	for ; s.started > 0; s.started-- {
		service := s.services[s.started-1]
		s.logger.Debugf("Stopping service %T", service)
		err := service.Stop()
		if err != nil {
			s.logger.Errorf("Error stopping service %T: %s", service, err)
			errs = append(errs, fmt.Errorf("stopping service %T: %w", service, err))
		}
	}
	s.logger.Debugf("All services stopped")
	return errors.Join(errs...)
}
