package scraper

// Selectors for the booking site's category page, date picker and
// availability table. The picker selectors carry alternates for the
// bootstrap-datetimepicker, plain datepicker and jQuery UI variants the site
// has shipped at different times.
const (
	DateInputSelector = "input#datetimepicker-input"

	PickerWidgetSelector = ".bootstrap-datetimepicker-widget, .datepicker, .ui-datepicker"

	MonthSwitchSelector = ".bootstrap-datetimepicker-widget .datepicker-days th.picker-switch, " +
		".bootstrap-datetimepicker-widget .picker-switch, " +
		".datepicker .datepicker-switch, " +
		".ui-datepicker-title"

	PrevMonthSelector = ".bootstrap-datetimepicker-widget th.prev, .datepicker th.prev, .ui-datepicker-prev"
	NextMonthSelector = ".bootstrap-datetimepicker-widget th.next, .datepicker th.next, .ui-datepicker-next"

	AvailabilityTableSelector = "#AvailabilityTable"

	tableContainerSelector = ".cl_availability-table"
	rowWrapSelector        = ".cl_availability-table__wrap"
	rowTitleSelector       = ".cl_availability-product__title span"
	dateCellSelector       = ".cl_availability-product__select"
	fareLabelSelector      = ".GBEAvailCalFirstFare"
)

// DayCellsScript lists the day cells that belong to the displayed month
// (cells carrying .old/.new belong to adjacent months and are excluded).
const DayCellsScript = `(() => {
	const widget = document.querySelector('.bootstrap-datetimepicker-widget, .datepicker, .ui-datepicker');
	if (!widget) return [];
	return Array.from(widget.querySelectorAll('.day:not(.old):not(.new)')).map(el => ({
		text: el.textContent.trim(),
		class: el.className,
	}));
})()`

// ClickDayScriptTemplate clicks the i-th current-month day cell; the index
// must come from the same enumeration DayCellsScript produces.
const ClickDayScriptTemplate = `((i) => {
	const widget = document.querySelector('.bootstrap-datetimepicker-widget, .datepicker, .ui-datepicker');
	const cells = widget ? widget.querySelectorAll('.day:not(.old):not(.new)') : [];
	if (cells[i]) cells[i].click();
})(%d)`

// TableLengthScript reports the availability table's serialized content
// length, or -1 when the container is absent.
const TableLengthScript = `(() => {
	const el = document.querySelector('#AvailabilityTable');
	return el ? el.innerHTML.length : -1;
})()`

const readyStateScript = `document.readyState`
