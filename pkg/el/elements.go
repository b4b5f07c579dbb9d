package el

import "github.com/arbor-ui/arbor/pkg/vdom"

// Document structure.
func Html(args ...any) vdom.VNode  { return E("html", args...) }
func Head(args ...any) vdom.VNode  { return E("head", args...) }
func Body(args ...any) vdom.VNode  { return E("body", args...) }
func Title(args ...any) vdom.VNode { return E("title", args...) }
func Meta(args ...any) vdom.VNode  { return E("meta", args...) }
func Base(args ...any) vdom.VNode  { return E("base", args...) }
func Style(args ...any) vdom.VNode { return E("style", args...) }

// Sections.
func Header(args ...any) vdom.VNode  { return E("header", args...) }
func Footer(args ...any) vdom.VNode  { return E("footer", args...) }
func Main(args ...any) vdom.VNode    { return E("main", args...) }
func Nav(args ...any) vdom.VNode     { return E("nav", args...) }
func Section(args ...any) vdom.VNode { return E("section", args...) }
func Article(args ...any) vdom.VNode { return E("article", args...) }
func Aside(args ...any) vdom.VNode   { return E("aside", args...) }
func Address(args ...any) vdom.VNode { return E("address", args...) }
func H1(args ...any) vdom.VNode      { return E("h1", args...) }
func H2(args ...any) vdom.VNode      { return E("h2", args...) }
func H3(args ...any) vdom.VNode      { return E("h3", args...) }
func H4(args ...any) vdom.VNode      { return E("h4", args...) }
func H5(args ...any) vdom.VNode      { return E("h5", args...) }
func H6(args ...any) vdom.VNode      { return E("h6", args...) }

// Grouping content.
func Div(args ...any) vdom.VNode        { return E("div", args...) }
func P(args ...any) vdom.VNode          { return E("p", args...) }
func Span(args ...any) vdom.VNode       { return E("span", args...) }
func Pre(args ...any) vdom.VNode        { return E("pre", args...) }
func Blockquote(args ...any) vdom.VNode { return E("blockquote", args...) }
func Ul(args ...any) vdom.VNode         { return E("ul", args...) }
func Ol(args ...any) vdom.VNode         { return E("ol", args...) }
func Li(args ...any) vdom.VNode         { return E("li", args...) }
func Dl(args ...any) vdom.VNode         { return E("dl", args...) }
func Dt(args ...any) vdom.VNode         { return E("dt", args...) }
func Dd(args ...any) vdom.VNode         { return E("dd", args...) }
func Hr(args ...any) vdom.VNode         { return E("hr", args...) }
func Figure(args ...any) vdom.VNode     { return E("figure", args...) }
func Figcaption(args ...any) vdom.VNode { return E("figcaption", args...) }

// Text-level semantics.
func A(args ...any) vdom.VNode      { return E("a", args...) }
func Strong(args ...any) vdom.VNode { return E("strong", args...) }
func Em(args ...any) vdom.VNode     { return E("em", args...) }
func B(args ...any) vdom.VNode      { return E("b", args...) }
func I(args ...any) vdom.VNode      { return E("i", args...) }
func U(args ...any) vdom.VNode      { return E("u", args...) }
func Small(args ...any) vdom.VNode  { return E("small", args...) }
func Sub(args ...any) vdom.VNode    { return E("sub", args...) }
func Sup(args ...any) vdom.VNode    { return E("sup", args...) }
func Code(args ...any) vdom.VNode   { return E("code", args...) }
func Kbd(args ...any) vdom.VNode    { return E("kbd", args...) }
func Samp(args ...any) vdom.VNode   { return E("samp", args...) }
func Mark(args ...any) vdom.VNode   { return E("mark", args...) }
func Abbr(args ...any) vdom.VNode   { return E("abbr", args...) }
func Time(args ...any) vdom.VNode   { return E("time", args...) }
func Br(args ...any) vdom.VNode     { return E("br", args...) }
func Wbr(args ...any) vdom.VNode    { return E("wbr", args...) }
func Q(args ...any) vdom.VNode      { return E("q", args...) }
func Cite(args ...any) vdom.VNode   { return E("cite", args...) }

// Embedded content.
func Img(args ...any) vdom.VNode     { return E("img", args...) }
func Iframe(args ...any) vdom.VNode  { return E("iframe", args...) }
func Embed(args ...any) vdom.VNode   { return E("embed", args...) }
func Object(args ...any) vdom.VNode  { return E("object", args...) }
func Video(args ...any) vdom.VNode   { return E("video", args...) }
func Audio(args ...any) vdom.VNode   { return E("audio", args...) }
func Source(args ...any) vdom.VNode  { return E("source", args...) }
func Track(args ...any) vdom.VNode   { return E("track", args...) }
func Canvas(args ...any) vdom.VNode  { return E("canvas", args...) }
func Picture(args ...any) vdom.VNode { return E("picture", args...) }

// Tables.
func Table(args ...any) vdom.VNode    { return E("table", args...) }
func Caption(args ...any) vdom.VNode  { return E("caption", args...) }
func Thead(args ...any) vdom.VNode    { return E("thead", args...) }
func Tbody(args ...any) vdom.VNode    { return E("tbody", args...) }
func Tfoot(args ...any) vdom.VNode    { return E("tfoot", args...) }
func Tr(args ...any) vdom.VNode       { return E("tr", args...) }
func Th(args ...any) vdom.VNode       { return E("th", args...) }
func Td(args ...any) vdom.VNode       { return E("td", args...) }
func Colgroup(args ...any) vdom.VNode { return E("colgroup", args...) }
func Col(args ...any) vdom.VNode      { return E("col", args...) }

// Forms.
func Form(args ...any) vdom.VNode     { return E("form", args...) }
func Input(args ...any) vdom.VNode    { return E("input", args...) }
func Textarea(args ...any) vdom.VNode { return E("textarea", args...) }
func Select(args ...any) vdom.VNode   { return E("select", args...) }
func Option(args ...any) vdom.VNode   { return E("option", args...) }
func Optgroup(args ...any) vdom.VNode { return E("optgroup", args...) }
func Button(args ...any) vdom.VNode   { return E("button", args...) }
func Label(args ...any) vdom.VNode    { return E("label", args...) }
func Fieldset(args ...any) vdom.VNode { return E("fieldset", args...) }
func Legend(args ...any) vdom.VNode   { return E("legend", args...) }
func Datalist(args ...any) vdom.VNode { return E("datalist", args...) }
func Output(args ...any) vdom.VNode   { return E("output", args...) }
func Progress(args ...any) vdom.VNode { return E("progress", args...) }
func Meter(args ...any) vdom.VNode    { return E("meter", args...) }

// Interactive elements.
func Details(args ...any) vdom.VNode { return E("details", args...) }
func Summary(args ...any) vdom.VNode { return E("summary", args...) }
func Dialog(args ...any) vdom.VNode  { return E("dialog", args...) }

// SVG. The renderer switches to the SVG namespace at the svg element and
// propagates it to descendants.
func Svg(args ...any) vdom.VNode            { return E("svg", args...) }
func Circle(args ...any) vdom.VNode         { return E("circle", args...) }
func Ellipse(args ...any) vdom.VNode        { return E("ellipse", args...) }
func Rect(args ...any) vdom.VNode           { return E("rect", args...) }
func Line(args ...any) vdom.VNode           { return E("line", args...) }
func Polyline(args ...any) vdom.VNode       { return E("polyline", args...) }
func Polygon(args ...any) vdom.VNode        { return E("polygon", args...) }
func Path(args ...any) vdom.VNode           { return E("path", args...) }
func G(args ...any) vdom.VNode              { return E("g", args...) }
func Defs(args ...any) vdom.VNode           { return E("defs", args...) }
func UseEl(args ...any) vdom.VNode          { return E("use", args...) }
func Text_(args ...any) vdom.VNode          { return E("text", args...) }
func Tspan(args ...any) vdom.VNode          { return E("tspan", args...) }
func ForeignObject(args ...any) vdom.VNode  { return E("foreignObject", args...) }
func LinearGradient(args ...any) vdom.VNode { return E("linearGradient", args...) }
func RadialGradient(args ...any) vdom.VNode { return E("radialGradient", args...) }
func Stop(args ...any) vdom.VNode           { return E("stop", args...) }

// MathML.
func Math(args ...any) vdom.VNode          { return E("math", args...) }
func Mi(args ...any) vdom.VNode            { return E("mi", args...) }
func Mn(args ...any) vdom.VNode            { return E("mn", args...) }
func Mo(args ...any) vdom.VNode            { return E("mo", args...) }
func Mrow(args ...any) vdom.VNode          { return E("mrow", args...) }
func Msup(args ...any) vdom.VNode          { return E("msup", args...) }
func Msub(args ...any) vdom.VNode          { return E("msub", args...) }
func Mfrac(args ...any) vdom.VNode         { return E("mfrac", args...) }
func Msqrt(args ...any) vdom.VNode         { return E("msqrt", args...) }
func Semantics(args ...any) vdom.VNode     { return E("semantics", args...) }
func AnnotationXML(args ...any) vdom.VNode { return E("annotation-xml", args...) }

// Scripting.
func Script(args ...any) vdom.VNode   { return E("script", args...) }
func Noscript(args ...any) vdom.VNode { return E("noscript", args...) }
func Template(args ...any) vdom.VNode { return E("template", args...) }
func Slot(args ...any) vdom.VNode     { return E("slot", args...) }
