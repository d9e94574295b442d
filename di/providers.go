package di

import (
	bookingService "voyago/internal/domains/booking/service"
	tpService "voyago/internal/domains/travelpackage/service"
	wlService "voyago/internal/domains/waitinglist/service"
)

// The waiting list service is the single listener for every event that frees
// rooms, whether it comes from a cancelled booking or an admin cap raise.

func provideBookingCapacityListener(wl wlService.WaitingList) bookingService.CapacityListener {
	return wl
}

func providePackageCapacityListener(wl wlService.WaitingList) tpService.CapacityListener {
	return wl
}
