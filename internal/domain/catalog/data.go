package catalog

import "github.com/rawafid/taqyim/internal/i18n"

// defaultDocument declares the built-in organization catalog. General
// criteria allocate 20 points; every department/role list allocates 80.
// New(defaultDocument()) re-checks those sums at startup.
func defaultDocument() Document {
	return Document{
		General:     generalCriteria(),
		Departments: defaultDepartments(),
		Supervisors: defaultSupervisors(),
	}
}

func generalCriteria() []Criterion {
	return []Criterion{
		{
			ID:          "gen_attendance",
			Name:        i18n.Text{AR: "الانضباط والحضور", EN: "Attendance & Punctuality"},
			Description: i18n.Text{AR: "الالتزام بمواعيد الدوام الرسمي", EN: "Adherence to official working hours"},
			Weight:      4,
		},
		{
			ID:          "gen_appearance",
			Name:        i18n.Text{AR: "المظهر العام", EN: "General Appearance"},
			Description: i18n.Text{AR: "الالتزام بالزي والمظهر اللائق", EN: "Proper uniform and presentable appearance"},
			Weight:      2,
		},
		{
			ID:          "gen_teamwork",
			Name:        i18n.Text{AR: "العمل الجماعي", EN: "Teamwork"},
			Description: i18n.Text{AR: "التعاون مع الزملاء وروح الفريق", EN: "Cooperation with colleagues and team spirit"},
			Weight:      4,
		},
		{
			ID:          "gen_communication",
			Name:        i18n.Text{AR: "التواصل", EN: "Communication"},
			Description: i18n.Text{AR: "وضوح التواصل مع الإدارة والزملاء", EN: "Clear communication with management and peers"},
			Weight:      3,
		},
		{
			ID:          "gen_initiative",
			Name:        i18n.Text{AR: "المبادرة", EN: "Initiative"},
			Description: i18n.Text{AR: "اقتراح الحلول والمبادرة بالعمل", EN: "Proposing solutions and acting proactively"},
			Weight:      3,
		},
		{
			ID:          "gen_compliance",
			Name:        i18n.Text{AR: "الالتزام بالأنظمة", EN: "Policy Compliance"},
			Description: i18n.Text{AR: "اتباع سياسات وإجراءات المنشأة", EN: "Following company policies and procedures"},
			Weight:      4,
		},
	}
}

func defaultDepartments() []Department {
	return []Department{
		{
			ID:   "sales",
			Name: i18n.Text{AR: "المبيعات", EN: "Sales"},
			RoleCriteria: map[string][]Criterion{
				"sales_rep": {
					{ID: "sr_targets", Name: i18n.Text{AR: "تحقيق الأهداف البيعية", EN: "Sales Target Achievement"}, Description: i18n.Text{AR: "نسبة تحقيق المستهدف الشهري", EN: "Monthly target attainment rate"}, Weight: 25},
					{ID: "sr_clients", Name: i18n.Text{AR: "إدارة علاقات العملاء", EN: "Client Relationship Management"}, Description: i18n.Text{AR: "المحافظة على العملاء وكسب عملاء جدد", EN: "Retaining clients and winning new ones"}, Weight: 20},
					{ID: "sr_negotiation", Name: i18n.Text{AR: "مهارات التفاوض", EN: "Negotiation Skills"}, Description: i18n.Text{AR: "إغلاق الصفقات بشروط مناسبة", EN: "Closing deals on favorable terms"}, Weight: 20},
					{ID: "sr_collection", Name: i18n.Text{AR: "تحصيل المستحقات", EN: "Receivables Collection"}, Description: i18n.Text{AR: "متابعة وتحصيل مستحقات العملاء", EN: "Following up and collecting client dues"}, Weight: 15},
				},
				"delivery_staff": {
					{ID: "ds_schedule", Name: i18n.Text{AR: "الالتزام بمواعيد التسليم", EN: "On-Time Delivery"}, Description: i18n.Text{AR: "تسليم الطلبات في الموعد المحدد", EN: "Delivering orders on schedule"}, Weight: 25},
					{ID: "ds_handling", Name: i18n.Text{AR: "سلامة التعامل مع البضاعة", EN: "Goods Handling"}, Description: i18n.Text{AR: "تسليم البضاعة دون تلف", EN: "Delivering goods undamaged"}, Weight: 20},
					{ID: "ds_docs", Name: i18n.Text{AR: "دقة مستندات التسليم", EN: "Delivery Documentation"}, Description: i18n.Text{AR: "اكتمال ودقة سندات التسليم", EN: "Complete and accurate delivery notes"}, Weight: 15},
					{ID: "ds_customer", Name: i18n.Text{AR: "التعامل مع العملاء", EN: "Customer Interaction"}, Description: i18n.Text{AR: "حسن التعامل عند التسليم", EN: "Courtesy at the point of delivery"}, Weight: 20},
				},
				"delivery_workers": {
					{ID: "dw_loading", Name: i18n.Text{AR: "سرعة التحميل والتفريغ", EN: "Loading & Unloading Speed"}, Description: i18n.Text{AR: "إنجاز التحميل والتفريغ بكفاءة", EN: "Efficient loading and unloading"}, Weight: 25},
					{ID: "dw_safety", Name: i18n.Text{AR: "اتباع إجراءات السلامة", EN: "Safety Procedures"}, Description: i18n.Text{AR: "الالتزام بتعليمات السلامة أثناء المناولة", EN: "Following safety rules during handling"}, Weight: 25},
					{ID: "dw_care", Name: i18n.Text{AR: "العناية بالبضاعة", EN: "Cargo Care"}, Description: i18n.Text{AR: "مناولة البضاعة دون إتلاف", EN: "Handling cargo without damage"}, Weight: 15},
					{ID: "dw_stamina", Name: i18n.Text{AR: "تحمل ضغط العمل", EN: "Work Under Pressure"}, Description: i18n.Text{AR: "الأداء في أوقات الذروة", EN: "Performance during peak times"}, Weight: 15},
				},
			},
			Employees: []Employee{
				{ID: "s1", Name: "أحمد الحربي", Position: i18n.Text{AR: "مندوب مبيعات", EN: "Sales Representative"}, RoleCode: "sales_rep"},
				{ID: "s2", Name: "خالد العتيبي", Position: i18n.Text{AR: "مندوب مبيعات", EN: "Sales Representative"}, RoleCode: "sales_rep"},
				{ID: "s3", Name: "سعود القحطاني", Position: i18n.Text{AR: "موظف تسليم", EN: "Delivery Staff"}, RoleCode: "delivery_staff"},
				{ID: "s4", Name: "ماجد الشهري", Position: i18n.Text{AR: "عامل تسليم", EN: "Delivery Worker"}, RoleCode: "delivery_workers"},
			},
		},
		{
			ID:   "vehicles",
			Name: i18n.Text{AR: "الحركة والمركبات", EN: "Vehicles"},
			RoleCriteria: map[string][]Criterion{
				"forklift_drivers": {
					{ID: "fd_operation", Name: i18n.Text{AR: "كفاءة تشغيل الرافعة", EN: "Forklift Operation"}, Description: i18n.Text{AR: "التشغيل السليم للرافعة الشوكية", EN: "Proper operation of the forklift"}, Weight: 25},
					{ID: "fd_safety", Name: i18n.Text{AR: "السلامة أثناء المناولة", EN: "Handling Safety"}, Description: i18n.Text{AR: "مناولة الأحمال دون حوادث", EN: "Moving loads without incidents"}, Weight: 25},
					{ID: "fd_maintenance", Name: i18n.Text{AR: "فحص وصيانة المعدة", EN: "Equipment Checks"}, Description: i18n.Text{AR: "الفحص اليومي والإبلاغ عن الأعطال", EN: "Daily checks and fault reporting"}, Weight: 15},
					{ID: "fd_accuracy", Name: i18n.Text{AR: "دقة الرص والتخزين", EN: "Stacking Accuracy"}, Description: i18n.Text{AR: "رص البضاعة في مواقعها الصحيحة", EN: "Stacking goods in their correct locations"}, Weight: 15},
				},
				"shipping_drivers": {
					{ID: "sd_routes", Name: i18n.Text{AR: "الالتزام بخطوط السير", EN: "Route Adherence"}, Description: i18n.Text{AR: "اتباع خطوط السير المعتمدة", EN: "Following approved routes"}, Weight: 25},
					{ID: "sd_safety", Name: i18n.Text{AR: "القيادة الآمنة", EN: "Safe Driving"}, Description: i18n.Text{AR: "القيادة دون مخالفات أو حوادث", EN: "Driving without violations or accidents"}, Weight: 25},
					{ID: "sd_vehicle", Name: i18n.Text{AR: "العناية بالمركبة", EN: "Vehicle Care"}, Description: i18n.Text{AR: "نظافة المركبة ومتابعة صيانتها", EN: "Vehicle cleanliness and maintenance follow-up"}, Weight: 15},
					{ID: "sd_delivery", Name: i18n.Text{AR: "إنجاز الشحنات في الوقت", EN: "Shipment Timeliness"}, Description: i18n.Text{AR: "إيصال الشحنات في مواعيدها", EN: "Delivering shipments on time"}, Weight: 15},
				},
			},
			Employees: []Employee{
				{ID: "v1", Name: "فهد الدوسري", Position: i18n.Text{AR: "سائق رافعة شوكية", EN: "Forklift Driver"}, RoleCode: "forklift_drivers"},
				{ID: "v2", Name: "ناصر الزهراني", Position: i18n.Text{AR: "سائق شحن", EN: "Shipping Driver"}, RoleCode: "shipping_drivers"},
			},
		},
		{
			ID:   "marketing",
			Name: i18n.Text{AR: "التسويق", EN: "Marketing"},
			Teams: map[string]Team{
				"photographer": {
					Name: i18n.Text{AR: "التصوير", EN: "Photography"},
					Criteria: []Criterion{
						{ID: "ph_quality", Name: i18n.Text{AR: "جودة الصور", EN: "Photo Quality"}, Description: i18n.Text{AR: "وضوح الصور وجودة الإخراج", EN: "Sharpness and production quality"}, Weight: 25},
						{ID: "ph_delivery", Name: i18n.Text{AR: "الالتزام بمواعيد التسليم", EN: "Delivery Deadlines"}, Description: i18n.Text{AR: "تسليم المواد في مواعيدها", EN: "Delivering material on deadline"}, Weight: 20},
						{ID: "ph_equipment", Name: i18n.Text{AR: "العناية بالمعدات", EN: "Equipment Care"}, Description: i18n.Text{AR: "صيانة وحفظ معدات التصوير", EN: "Maintaining and storing camera equipment"}, Weight: 15},
						{ID: "ph_creativity", Name: i18n.Text{AR: "الإبداع البصري", EN: "Visual Creativity"}, Description: i18n.Text{AR: "زوايا وأفكار تصوير مبتكرة", EN: "Creative angles and shot ideas"}, Weight: 20},
					},
					Employees: []Employee{
						{ID: "m1", Name: "عبدالله الشمري", Position: i18n.Text{AR: "مصور", EN: "Photographer"}, RoleCode: "photographer"},
					},
				},
				"editor": {
					Name: i18n.Text{AR: "المونتاج", EN: "Video Editing"},
					Criteria: []Criterion{
						{ID: "ed_quality", Name: i18n.Text{AR: "جودة المونتاج", EN: "Editing Quality"}, Description: i18n.Text{AR: "سلاسة القطع وجودة الإخراج النهائي", EN: "Smooth cuts and final output quality"}, Weight: 25},
						{ID: "ed_speed", Name: i18n.Text{AR: "سرعة الإنجاز", EN: "Turnaround Speed"}, Description: i18n.Text{AR: "إنجاز المقاطع في الوقت المطلوب", EN: "Completing videos within the requested time"}, Weight: 20},
						{ID: "ed_effects", Name: i18n.Text{AR: "توظيف المؤثرات", EN: "Effects Usage"}, Description: i18n.Text{AR: "استخدام المؤثرات بما يخدم المحتوى", EN: "Using effects in service of the content"}, Weight: 15},
						{ID: "ed_consistency", Name: i18n.Text{AR: "اتساق الهوية البصرية", EN: "Brand Consistency"}, Description: i18n.Text{AR: "الالتزام بالهوية البصرية للمنشأة", EN: "Staying within the brand's visual identity"}, Weight: 20},
					},
					Employees: []Employee{
						{ID: "m2", Name: "يوسف الغامدي", Position: i18n.Text{AR: "فني مونتاج", EN: "Video Editor"}, RoleCode: "editor"},
					},
				},
				"designer": {
					Name: i18n.Text{AR: "التصميم", EN: "Design"},
					Criteria: []Criterion{
						{ID: "ad_quality", Name: i18n.Text{AR: "جودة التصاميم", EN: "Design Quality"}, Description: i18n.Text{AR: "إتقان التصاميم الإعلانية", EN: "Craftsmanship of ad designs"}, Weight: 25},
						{ID: "ad_brand", Name: i18n.Text{AR: "الالتزام بالهوية", EN: "Brand Adherence"}, Description: i18n.Text{AR: "توافق التصاميم مع الهوية", EN: "Designs consistent with the brand"}, Weight: 20},
						{ID: "ad_speed", Name: i18n.Text{AR: "سرعة التنفيذ", EN: "Execution Speed"}, Description: i18n.Text{AR: "تنفيذ الطلبات في وقتها", EN: "Completing requests on time"}, Weight: 15},
						{ID: "ad_ideas", Name: i18n.Text{AR: "الأفكار الإعلانية", EN: "Ad Concepts"}, Description: i18n.Text{AR: "اقتراح أفكار إعلانية جديدة", EN: "Proposing fresh advertising concepts"}, Weight: 20},
					},
					Employees: []Employee{
						{ID: "m3", Name: "عمر العنزي", Position: i18n.Text{AR: "مصمم إعلان", EN: "Ad Designer"}, RoleCode: "designer"},
					},
				},
				"social_media": {
					Name: i18n.Text{AR: "السوشيال ميديا", EN: "Social Media"},
					Criteria: []Criterion{
						{ID: "sm_engagement", Name: i18n.Text{AR: "التفاعل مع الجمهور", EN: "Audience Engagement"}, Description: i18n.Text{AR: "الرد على الجمهور وزيادة التفاعل", EN: "Responding to the audience and growing engagement"}, Weight: 25},
						{ID: "sm_content", Name: i18n.Text{AR: "جودة المحتوى", EN: "Content Quality"}, Description: i18n.Text{AR: "محتوى جذاب وخالٍ من الأخطاء", EN: "Engaging, error-free content"}, Weight: 20},
						{ID: "sm_schedule", Name: i18n.Text{AR: "انتظام النشر", EN: "Posting Consistency"}, Description: i18n.Text{AR: "الالتزام بجدول النشر", EN: "Sticking to the posting schedule"}, Weight: 15},
						{ID: "sm_growth", Name: i18n.Text{AR: "نمو المتابعين", EN: "Follower Growth"}, Description: i18n.Text{AR: "نمو قاعدة المتابعين", EN: "Growth of the follower base"}, Weight: 20},
					},
					Employees: []Employee{
						{ID: "m4", Name: "بدر المطيري", Position: i18n.Text{AR: "أخصائي سوشيال ميديا", EN: "Social Media Specialist"}, RoleCode: "social_media"},
					},
				},
			},
		},
		{
			ID:   "projects",
			Name: i18n.Text{AR: "المشاريع", EN: "Projects"},
			RoleCriteria: map[string][]Criterion{
				"foremen": {
					{ID: "fm_supervision", Name: i18n.Text{AR: "الإشراف على العمال", EN: "Crew Supervision"}, Description: i18n.Text{AR: "توجيه ومتابعة عمال الموقع", EN: "Directing and following up site crews"}, Weight: 25},
					{ID: "fm_schedule", Name: i18n.Text{AR: "الالتزام بجدول المشروع", EN: "Schedule Adherence"}, Description: i18n.Text{AR: "إنجاز المراحل حسب الجدول الزمني", EN: "Completing phases per the timeline"}, Weight: 20},
					{ID: "fm_quality", Name: i18n.Text{AR: "جودة التنفيذ", EN: "Execution Quality"}, Description: i18n.Text{AR: "مطابقة الأعمال للمواصفات", EN: "Work conforming to specifications"}, Weight: 20},
					{ID: "fm_reporting", Name: i18n.Text{AR: "رفع التقارير", EN: "Site Reporting"}, Description: i18n.Text{AR: "تقارير يومية دقيقة عن الموقع", EN: "Accurate daily site reports"}, Weight: 15},
				},
				"project_workers": {
					{ID: "pw_execution", Name: i18n.Text{AR: "إتقان أعمال الموقع", EN: "Site Workmanship"}, Description: i18n.Text{AR: "تنفيذ الأعمال الموكلة بإتقان", EN: "Executing assigned work properly"}, Weight: 25},
					{ID: "pw_safety", Name: i18n.Text{AR: "الالتزام بالسلامة", EN: "Safety Compliance"}, Description: i18n.Text{AR: "ارتداء معدات الوقاية واتباع التعليمات", EN: "Wearing PPE and following instructions"}, Weight: 25},
					{ID: "pw_tools", Name: i18n.Text{AR: "العناية بالعدد والأدوات", EN: "Tool Care"}, Description: i18n.Text{AR: "المحافظة على عدد وأدوات العمل", EN: "Taking care of tools and equipment"}, Weight: 15},
					{ID: "pw_cooperation", Name: i18n.Text{AR: "التعاون في الموقع", EN: "Site Cooperation"}, Description: i18n.Text{AR: "التعاون مع الفريق والفورمان", EN: "Cooperating with the crew and foreman"}, Weight: 15},
				},
			},
			Employees: []Employee{
				{ID: "p1", Name: "إبراهيم السبيعي", Position: i18n.Text{AR: "فورمان", EN: "Foreman"}, RoleCode: "foremen"},
				{ID: "p2", Name: "حسن عسيري", Position: i18n.Text{AR: "عامل مشروع", EN: "Project Worker"}, RoleCode: "project_workers"},
			},
		},
		{
			ID:   "marble",
			Name: i18n.Text{AR: "الرخام", EN: "Marble"},
			RoleCriteria: map[string][]Criterion{
				"project_workers": {
					{ID: "mb_execution", Name: i18n.Text{AR: "تنفيذ أعمال الرخام", EN: "Marble Site Work"}, Description: i18n.Text{AR: "تنفيذ أعمال الرخام بالمواقع", EN: "Executing marble work on site"}, Weight: 25},
					{ID: "mb_safety", Name: i18n.Text{AR: "الالتزام بالسلامة", EN: "Safety Compliance"}, Description: i18n.Text{AR: "اتباع إجراءات السلامة", EN: "Following safety procedures"}, Weight: 25},
					{ID: "mb_tools", Name: i18n.Text{AR: "العناية بالعدد", EN: "Tool Care"}, Description: i18n.Text{AR: "المحافظة على أدوات العمل", EN: "Taking care of work tools"}, Weight: 15},
					{ID: "mb_finish", Name: i18n.Text{AR: "نظافة التنفيذ", EN: "Clean Execution"}, Description: i18n.Text{AR: "تسليم الموقع نظيفاً ومرتباً", EN: "Leaving the site clean and tidy"}, Weight: 15},
				},
				"cutting_workers": {
					{ID: "ct_precision", Name: i18n.Text{AR: "دقة القص", EN: "Cutting Precision"}, Description: i18n.Text{AR: "قص الألواح حسب المقاسات", EN: "Cutting slabs to measurements"}, Weight: 25},
					{ID: "ct_waste", Name: i18n.Text{AR: "تقليل الهدر", EN: "Waste Reduction"}, Description: i18n.Text{AR: "الاستفادة القصوى من الألواح", EN: "Maximizing slab utilization"}, Weight: 20},
					{ID: "ct_machine", Name: i18n.Text{AR: "تشغيل المناشير", EN: "Saw Operation"}, Description: i18n.Text{AR: "التشغيل السليم لمناشير القص", EN: "Proper operation of cutting saws"}, Weight: 15},
					{ID: "ct_safety", Name: i18n.Text{AR: "السلامة", EN: "Safety"}, Description: i18n.Text{AR: "السلامة أثناء القص", EN: "Safety during cutting"}, Weight: 20},
				},
				"installation_workers": {
					{ID: "in_precision", Name: i18n.Text{AR: "دقة التركيب", EN: "Installation Precision"}, Description: i18n.Text{AR: "استواء ودقة تركيب الرخام", EN: "Level, precise marble installation"}, Weight: 25},
					{ID: "in_finish", Name: i18n.Text{AR: "جودة التشطيب النهائي", EN: "Finish Quality"}, Description: i18n.Text{AR: "جودة الفواصل واللمسات الأخيرة", EN: "Quality of joints and final touches"}, Weight: 20},
					{ID: "in_speed", Name: i18n.Text{AR: "سرعة الإنجاز", EN: "Completion Speed"}, Description: i18n.Text{AR: "إنجاز التركيب في الوقت المحدد", EN: "Completing installation on time"}, Weight: 15},
					{ID: "in_safety", Name: i18n.Text{AR: "السلامة", EN: "Safety"}, Description: i18n.Text{AR: "السلامة أثناء التركيب", EN: "Safety during installation"}, Weight: 20},
				},
				"finishing_workers": {
					{ID: "fn_polish", Name: i18n.Text{AR: "جودة الجلي والتلميع", EN: "Polishing Quality"}, Description: i18n.Text{AR: "لمعان وجودة السطح النهائي", EN: "Shine and quality of the final surface"}, Weight: 25},
					{ID: "fn_detail", Name: i18n.Text{AR: "العناية بالتفاصيل", EN: "Detail Work"}, Description: i18n.Text{AR: "معالجة الحواف والزوايا", EN: "Treating edges and corners"}, Weight: 20},
					{ID: "fn_speed", Name: i18n.Text{AR: "سرعة الإنجاز", EN: "Completion Speed"}, Description: i18n.Text{AR: "إنجاز التشطيب في وقته", EN: "Finishing on schedule"}, Weight: 15},
					{ID: "fn_safety", Name: i18n.Text{AR: "السلامة", EN: "Safety"}, Description: i18n.Text{AR: "السلامة أثناء التشطيب", EN: "Safety during finishing"}, Weight: 20},
				},
			},
			Employees: []Employee{
				{ID: "mb1", Name: "صالح اليامي", Position: i18n.Text{AR: "عامل مشروع", EN: "Project Worker"}, RoleCode: "project_workers"},
				{ID: "mb2", Name: "علي جابر", Position: i18n.Text{AR: "عامل قص", EN: "Cutter"}, RoleCode: "cutting_workers"},
				{ID: "mb3", Name: "محمد هادي", Position: i18n.Text{AR: "عامل تركيب", EN: "Installer"}, RoleCode: "installation_workers"},
				{ID: "mb4", Name: "سالم آل فطيح", Position: i18n.Text{AR: "عامل تشطيب", EN: "Finisher"}, RoleCode: "finishing_workers"},
			},
		},
		{
			ID:   "warehouse",
			Name: i18n.Text{AR: "المستودعات", EN: "Warehouse"},
			Criteria: []Criterion{
				{ID: "wh_accuracy", Name: i18n.Text{AR: "دقة الجرد والاستلام", EN: "Inventory Accuracy"}, Description: i18n.Text{AR: "دقة سجلات الاستلام والجرد", EN: "Accuracy of receiving and stock records"}, Weight: 25},
				{ID: "wh_organization", Name: i18n.Text{AR: "ترتيب المستودع", EN: "Warehouse Organization"}, Description: i18n.Text{AR: "ترتيب وتصنيف المواد", EN: "Organizing and classifying materials"}, Weight: 20},
				{ID: "wh_issue", Name: i18n.Text{AR: "سرعة الصرف", EN: "Issue Turnaround"}, Description: i18n.Text{AR: "صرف المواد للطلبات بسرعة", EN: "Issuing materials for requests promptly"}, Weight: 20},
				{ID: "wh_safety", Name: i18n.Text{AR: "السلامة", EN: "Safety"}, Description: i18n.Text{AR: "السلامة داخل المستودع", EN: "Safety inside the warehouse"}, Weight: 15},
			},
			Employees: []Employee{
				{ID: "w1", Name: "طلال الرشيدي", Position: i18n.Text{AR: "أمين مستودع", EN: "Storekeeper"}},
			},
		},
	}
}

func defaultSupervisors() []Supervisor {
	return []Supervisor{
		{ID: "sup1", Name: "عبدالعزيز الفيصل", Position: i18n.Text{AR: "مدير المبيعات", EN: "Sales Manager"}},
		{ID: "sup2", Name: "منصور الخالدي", Position: i18n.Text{AR: "مدير العمليات", EN: "Operations Manager"}},
		{ID: "sup3", Name: "تركي السديري", Position: i18n.Text{AR: "مدير الموارد البشرية", EN: "HR Manager"}},
	}
}
