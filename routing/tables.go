package routing

// Static routing tables for the dashboard assistant.
//
// roleIndicators and featureIndicators are ordered slices, not maps:
// resolution is first-match-in-declared-order and the order is part of
// the contract.

// roleOperations describes what each role can do in the destination
// application. The text is embedded verbatim into the model prompt.
var roleOperations = map[string][]string{
	"admin": {
		"create, read, update, delete users (students, parents, teachers, principals, district heads)",
		"full access to all data and operations",
	},
	"parent": {
		"view child data (attendance, marks, fees, extracurricular activities)",
	},
	"teacher": {
		"create classes, add students to classes within the same school",
		"read student and parent details",
		"upload marks, attendance, register students for events/sports",
		"apply for leave, arrange parent-teacher interactions",
	},
	"principal": {
		"monitor all classes, teachers, and students in the school",
		"conduct events, allocate budgets, fix fees for classes",
		"schedule meetings with the district head",
	},
	"districthead": {
		"monitor all schools within the district",
		"allocate budgets for schools, attend council meetings",
		"record school progress and assess school fitness",
	},
}

// featureLinks maps (group, key) to a navigation path. Groups are either
// role-keyed (role -> feature -> path) or feature-keyed ("login",
// "dashboard": feature -> role -> path); lookupLink checks both
// directions.
var featureLinks = map[string]map[string]string{
	"login": {
		"admin":        "/login/admin",
		"parent":       "/login/parent",
		"teacher":      "/login/teacher",
		"principal":    "/login/principal",
		"districthead": "/login/district",
		"default":      "/selectuser",
	},
	"dashboard": {
		"parent":       "/dashboard/parent",
		"teacher":      "/dashboard/teacher",
		"principal":    "/dashboard/principal",
		"districthead": "/dashboard/districthead",
		"admin":        "/dashboard/admin",
		"default":      "/login",
	},
	"parent": {
		"child_profile":          "/dashboard/parent/childProfile",
		"attendance":             "/dashboard/parent/Attendance",
		"marks":                  "/dashboard/parent/Marks",
		"events":                 "/dashboard/parent/Events",
		"fees":                   "/dashboard/parent/Fees",
		"profile":                "/dashboard/parent/profile",
		"parent_teacher_meeting": "/dashboard/parent/PT Meetings",
		"contact_admin":          "/dashboard/parent/contactAdmin",
		"teachers":               "/dashboard/parent/Teachers",
	},
	"teacher": {
		"classes":                "/dashboard/teacher/classes",
		"attendance":             "/dashboard/teacher/attendance",
		"marks":                  "/dashboard/teacher/marks",
		"events":                 "/dashboard/teacher/events",
		"leave":                  "/dashboard/teacher/leave",
		"profile":                "/dashboard/teacher/profile",
		"search_student":         "/dashboard/teacher/search student",
		"parent_teacher_meeting": "/dashboard/teacher/parentInteraction",
		"contact_admin":          "/dashboard/teacher/Contact Admin",
	},
	"principal": {
		"search_student":  "/dashboard/principal/studentSearch",
		"search_teacher":  "/dashboard/principal/teacherSearch",
		"school_fees":     "/dashboard/principal/schoolFees",
		"budget":          "/dashboard/principal/budgetUsage",
		"events":          "/dashboard/principal/events",
		"meetings":        "/dashboard/principal/meetings",
		"leave_approvals": "/dashboard/principal/leaveApprovals",
		"profile":         "/dashboard/principal/profile",
		"contact_admin":   "/dashboard/principal/contactAdmin",
	},
	"districthead": {
		"search_school":  "/dashboard/districthead/schoolSearch",
		"search_teacher": "/dashboard/districthead/teacherSearch",
		"search_student": "/dashboard/districthead/studentSearch",
		"budget":         "/dashboard/districthead/budgets",
		"meetings":       "/dashboard/districthead/meetings",
		"exams":          "/dashboard/districthead/exams",
		"contact_admin":  "/dashboard/districthead/contactAdmin",
	},
	"admin": {
		"create_student":  "/dashboard/admin/createStudent",
		"create_teacher":  "/dashboard/admin/createTeacher",
		"create_school":   "/dashboard/admin/createSchool",
		"create_district": "/dashboard/admin/createDistrict",
		"search_student":  "/dashboard/admin/studentList",
		"search_teacher":  "/dashboard/admin/teacherList",
		"search_school":   "/dashboard/admin/schoolList",
		"search_district": "/dashboard/admin/districtList",
		"update_student":  "/dashboard/admin/updateStudent",
		"update_teacher":  "/dashboard/admin/updateTeacher",
		"update_school":   "/dashboard/admin/updateSchool",
		"update_district": "/dashboard/admin/updateDistrict",
		"delete_student":  "/dashboard/admin/deleteStudent",
		"delete_teacher":  "/dashboard/admin/deleteTeacher",
		"delete_school":   "/dashboard/admin/deleteSchool",
		"delete_district": "/dashboard/admin/deleteDistrict",
	},
}

// loginKeywords gate anonymous users: a guest message containing any of
// these (substring, case-insensitive) requires login.
var loginKeywords = []string{
	"attendance", "marks", "class", "student", "parent", "budget",
	"fee", "leave", "application", "events", "meeting", "register",
	"upload", "create", "delete", "update", "modify", "schedule",
	"interaction", "profile", "details", "view", "check", "access",
	"my", "record",
}

// indicatorEntry pairs a table key with its trigger phrases.
type indicatorEntry struct {
	Key     string
	Phrases []string
}

// roleIndicators suggest which role an anonymous user is trying to act
// as. First phrase contained in the message wins.
var roleIndicators = []indicatorEntry{
	{"admin", []string{"admin", "administrator", "manage users", "create users", "delete users", "system administrator"}},
	{"parent", []string{"my child", "my kid", "children", "parent", "fee payment", "child attendance", "my child's grades"}},
	{"teacher", []string{"teacher", "upload marks", "attendance", "create class", "my students", "class management"}},
	{"principal", []string{"principal", "school budget", "conduct event", "school management", "approve leave"}},
	{"districthead", []string{"district", "multiple schools", "district head", "school network", "district management"}},
}

// featureIndicators map trigger phrases to feature names. First phrase
// contained in the message wins.
var featureIndicators = []indicatorEntry{
	{"dashboard", []string{"dashboard", "home", "main page", "overview", "homepage"}},
	{"child_profile", []string{"child profile", "my kid profile", "child details", "kid details"}},
	{"search_student", []string{"search student", "find student", "student search", "look up student"}},
	{"search_teacher", []string{"search teacher", "find teacher", "teacher search", "look up teacher"}},
	{"search_school", []string{"search school", "find school", "school search", "look up school"}},
	{"search_district", []string{"search district", "find district", "district search", "look up district"}},
	{"attendance", []string{"attendance", "present", "absent", "roll call", "check-in"}},
	{"marks", []string{"marks", "grades", "scores", "results", "performance", "academic results"}},
	{"classes", []string{"classes", "section", "classroom", "create class", "manage class"}},
	{"events", []string{"events", "activities", "functions", "programs", "register for event", "school events"}},
	{"fees", []string{"fees", "payments", "dues", "pay", "money", "finance", "fee structure", "school fees"}},
	{"leave", []string{"leave", "absent", "day off", "vacation", "holiday", "leave requests"}},
	{"budget", []string{"budget", "funds", "allocate", "spending", "expenses", "money allocation"}},
	{"meetings", []string{"meetings", "appointments", "schedule", "discussions", "parent teacher meeting"}},
	{"parent_teacher_meeting", []string{"parent teacher meeting", "pt meeting", "parent conference", "teacher meeting"}},
	{"profile", []string{"profile", "account", "my details", "personal information", "user account"}},
	{"leave_approvals", []string{"leave approvals", "approve leave", "leave requests", "leave management"}},
	{"school_fees", []string{"school fees", "fee structure", "payment details", "fee collection"}},
	{"exams", []string{"exams", "tests", "assessments", "evaluations", "examination schedule"}},
	{"contact_admin", []string{"contact admin", "admin support", "help desk", "support", "admin assistance"}},
	{"create_student", []string{"create student", "add student", "new student", "register student"}},
	{"create_teacher", []string{"create teacher", "add teacher", "new teacher", "register teacher"}},
	{"create_school", []string{"create school", "add school", "new school", "register school"}},
	{"create_district", []string{"create district", "add district", "new district", "register district"}},
	{"update_student", []string{"update student", "edit student", "modify student", "change student details"}},
	{"update_teacher", []string{"update teacher", "edit teacher", "modify teacher", "change teacher details"}},
	{"update_school", []string{"update school", "edit school", "modify school", "change school details"}},
	{"update_district", []string{"update district", "edit district", "modify district", "change district details"}},
	{"delete_student", []string{"delete student", "remove student", "deactivate student"}},
	{"delete_teacher", []string{"delete teacher", "remove teacher", "deactivate teacher"}},
	{"delete_school", []string{"delete school", "remove school", "deactivate school"}},
	{"delete_district", []string{"delete district", "remove district", "deactivate district"}},
}

// greetingPhrases are matched exactly against the trimmed, lowercased
// message. "hi there" is not a greeting.
var greetingPhrases = []string{
	"hi", "hello", "hey", "hii", "hiii", "hiiii", "greetings", "howdy",
	"good morning", "good afternoon", "good evening", "good day",
}

const guestGreeting = "Hello! Please log in to access personalized assistance. How can I help you today?"

const genericGreeting = "Hello! How can I assist you today?"

var roleGreetings = map[string]string{
	"admin":        "Hello, admin! I can help you manage users, monitor activities, or generate reports. What would you like to do?",
	"parent":       "Hello! I can help you check your child's progress, fees, or attendance. What would you like to know?",
	"teacher":      "Hi there! I can assist you with creating classes, uploading marks, or tracking attendance. How can I help you today?",
	"principal":    "Hello, Principal! I can help you monitor school activities, allocate budgets, or schedule meetings. What do you need?",
	"districthead": "Hello! I can assist you with overseeing schools, allocating funds, or accessing district reports. How may I help you?",
}
